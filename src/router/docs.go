// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package router implements the agent's request routing independent of any
// transport. It maps a (path, query) pair to an HTTP-shaped Response with a
// JSON body, converting every internal fault into a 500 response so nothing
// propagates to the transport layer uncaught.
package router
