// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vsalvino/agent/src/phrase"
)

// ToolHandler is the function signature for MCP tool implementations.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolDefinition holds a tool definition and its handler.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
}

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The agent exposes a single tool:
//   - get_phrase: returns the agent's catch-phrase, optionally randomized
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool("get_phrase",
				mcp.WithDescription("Get the agent's catch-phrase as JSON: {\"random\": bool, \"phrase\": string}"),
				mcp.WithBoolean("random",
					mcp.Description("Pick a uniformly random phrase instead of the fixed default (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleGetPhrase,
		},
	}
}

// handleGetPhrase returns the agent's catch-phrase as a JSON text result,
// using the same body shape as the HTTP /phrase route so MCP and HTTP
// clients see identical payloads.
func handleGetPhrase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	randomize := request.GetBool("random", false)

	body := struct {
		Random bool   `json:"random"`
		Phrase string `json:"phrase"`
	}{
		Random: randomize,
		Phrase: phrase.New().Get(randomize),
	}

	data, err := json.Marshal(body)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode phrase: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
