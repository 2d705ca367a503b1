// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package phrase implements the agent's core business logic: a fixed
// catalogue of catch-phrases with deterministic and randomized selection.
// Randomness is injected through the Picker interface so callers and tests
// can substitute their own selection strategy.
package phrase
