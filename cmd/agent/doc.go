// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// agent is a long-running server agent with a command-line interface.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/vsalvino/agent/cmd/agent@latest
//
// # Usage
//
//	agent <command> [FLAGS]
//
// # Commands
//
//	phrase     Print the agent's catch-phrase to stdout
//	webserver  Run the HTTP(S) API server in the foreground
//	mcp        Serve the phrase tool over the MCP stdio protocol
//
// # Examples
//
// Print the deterministic default phrase:
//
//	agent phrase
//
// Print a random phrase:
//
//	agent phrase --random
//
// List the full catalogue as a markdown table:
//
//	agent phrase --list
//
// Run the webserver on localhost:8000:
//
//	agent webserver
//
// Run the webserver with TLS:
//
//	agent webserver --ssl_cert cert.pem --ssl_key key.pem
//
// Query the running webserver:
//
//	curl http://localhost:8000/phrase?random=true
//
// Run under a service supervisor (systemd unit, launchd job, etc.); the
// agent itself stays in the foreground and exits cleanly on SIGINT/SIGTERM.
package main
