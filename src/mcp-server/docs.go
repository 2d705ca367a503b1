// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the agent's phrase function over the [MCP]
// stdio protocol. It registers a single get_phrase tool plus static
// resources for the phrase catalogue and server metadata, and supports
// signal-driven graceful shutdown.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
