// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/vsalvino/agent/src/version"
)

const serverName = "Phrase Agent"

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
// The version is initially the default from the version package and is
// overridden when Run is called with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP stdio server exposing the phrase tool.
//
// Server lifecycle:
//  1. Register tools and resources
//  2. Set up signal handling for graceful shutdown
//  3. Start the stdio server with context cancellation support
//  4. Wait for either a server error or a shutdown signal
//
// Run responds to SIGINT and SIGTERM by cancelling the server context and
// returns nil: a signal is a normal shutdown request, not an error.
func Run(ver string) error {
	return run(ver, os.Stdin, os.Stdout)
}

// run is the testable core of Run; tests substitute their own streams so
// stdio stays under their control.
func run(ver string, in io.Reader, out io.Writer) error {
	appVersion = ver

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	s := server.NewMCPServer(
		serverName,
		ver,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)

	for _, tool := range createTools() {
		s.AddTool(tool.Tool, tool.Handler)
	}
	for _, resource := range createResources() {
		s.AddResource(resource.Resource, resource.Handler)
	}

	// Create stdio server to connect with our context
	stdioServer := server.NewStdioServer(s)

	// Start server with graceful shutdown support
	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		// Graceful shutdown triggered by signal
		return nil
	}
}
