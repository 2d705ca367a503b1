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
	"github.com/mark3labs/mcp-go/server"
	"github.com/vsalvino/agent/src/phrase"
)

// createResources creates the static resources served by the MCP server.
//
// Resources:
//   - phrases://list: the full phrase catalogue as JSON
//   - info://version: server metadata (name, version, capabilities)
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				"phrases://list",
				"Phrase Catalogue",
				mcp.WithResourceDescription("The agent's fixed phrase catalogue in order; the first entry is the deterministic default"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handlePhraseListResource,
		},
		{
			Resource: mcp.NewResource(
				"info://version",
				"Server Version",
				mcp.WithResourceDescription("Agent MCP server metadata"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
	}
}

// handlePhraseListResource serves the phrase catalogue as JSON.
func handlePhraseListResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(phrase.New().List(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal phrase catalogue: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "phrases://list",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource serves server metadata.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	info := map[string]any{
		"name":    serverName,
		"version": GetVersion(),
		"tools":   []string{"get_phrase"},
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal server info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "info://version",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
