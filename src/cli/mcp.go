// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"
	mcpserver "github.com/vsalvino/agent/src/mcp-server"
)

// newMCPCommand builds the "mcp" subcommand: serve the phrase tool over the
// MCP stdio protocol.
func newMCPCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP stdio server",
		Long: `Run the agent as an MCP (Model Context Protocol) server over stdio,
exposing the get_phrase tool and the phrase catalogue resource.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := mcpserver.Run(version); err != nil {
				return &RuntimeError{Err: err}
			}
			return nil
		},
	}
}
