// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsalvino/agent/src/cli"
	"github.com/vsalvino/agent/src/logger"
	verpkg "github.com/vsalvino/agent/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Create CLI logger
	log := logger.NewCLILogger()

	// Interrupt and termination signals cancel the command context; the
	// long-running commands turn that into a graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Cobra reports argument errors to stderr itself; only the exit code
	// mapping is done here (0 success, 1 runtime failure, 2 argument error).
	err := cli.Execute(ctx, version, log)
	os.Exit(cli.ExitCode(err))
}
