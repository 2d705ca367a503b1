// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package webserver implements the agent's HTTP server lifecycle: listener
// binding, optional TLS upgrade from a certificate/key pair, request
// dispatch to the router, and graceful shutdown on interrupt. Configuration
// comes from defaults, an optional JSON/YAML file, and caller-applied flag
// overrides, in that order. All configuration faults terminate startup
// before any socket is bound.
package webserver
