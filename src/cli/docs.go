// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the agent.
// It implements a Cobra-based CLI with a closed set of subcommands: "phrase"
// prints the catch-phrase locally, "webserver" runs the HTTP(S) server in
// the foreground, and "mcp" serves the phrase tool over MCP stdio. Argument
// errors map to exit code 2, runtime failures to exit code 1.
package cli
