// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/vsalvino/agent/src/logger"
)

// RuntimeError marks failures that happened after arguments were parsed
// successfully, so the entrypoint can distinguish them from argument errors
// when choosing an exit code.
type RuntimeError struct{ Err error }

// Error satisfies the error interface.
func (e *RuntimeError) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying error for errors.Is/As.
func (e *RuntimeError) Unwrap() error { return e.Err }

// ExitCode maps an Execute error to a process exit code: 0 for success,
// 1 for runtime failures, and 2 for argument errors by CLI convention.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		return 1
	}
	return 2
}

// Execute runs the root command with the given context.
// Any returned error has already been reported by cobra; callers should map
// it to an exit code with ExitCode.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the agent's command tree: a closed set of
// subcommands, each carrying its own validated flag set.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "agent",
		Short:   "A server agent and CLI",
		Long:    "A long-running agent exposing its catch-phrase through a CLI, an HTTP API, and an MCP server.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation is an argument error: show usage, exit non-zero.
			if err := cmd.Help(); err != nil {
				return err
			}
			return errors.New("no command specified")
		},
	}

	rootCmd.AddCommand(
		newPhraseCommand(log),
		newWebserverCommand(log),
		newMCPCommand(version),
	)

	return rootCmd
}
