// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package phrase

import (
	"math/rand/v2"
	"slices"
)

// phrases is the agent's fixed catch-phrase catalogue.
// Invariant: non-empty; the first entry is the deterministic default.
var phrases = []string{
	"The name’s Bond. James Bond.",
	"Shaken, not stirred.",
	"They say you’re judged by the strength of your enemies.",
	"Problem solver? More of a problem eliminator.",
}

// Picker selects one index out of n.
// Implementations must return a value in [0, n).
//
// Injecting the selection strategy keeps Provider deterministic under test:
// production code uses the process-wide random source while tests substitute
// a fixed stub.
type Picker interface {
	Pick(n int) int
}

// randPicker is the production Picker backed by math/rand/v2.
type randPicker struct{}

// Pick returns a uniformly random index in [0, n).
func (randPicker) Pick(n int) int { return rand.IntN(n) }

// Provider returns the agent's catch-phrases.
// The zero value is not usable; create instances with New or NewWithPicker.
type Provider struct{ picker Picker }

// New creates a Provider using the process-wide random source.
func New() *Provider { return &Provider{picker: randPicker{}} }

// NewWithPicker creates a Provider with a custom selection strategy.
// A nil picker falls back to the production random picker.
func NewWithPicker(p Picker) *Provider {
	if p == nil {
		p = randPicker{}
	}
	return &Provider{picker: p}
}

// Get returns the agent's catch-phrase.
//
// When randomize is false, the first phrase of the catalogue is returned,
// keeping output deterministic for scripting and testing. When true, a
// uniformly random member of the catalogue is returned.
func (p *Provider) Get(randomize bool) string {
	if randomize {
		return phrases[p.picker.Pick(len(phrases))]
	}
	return phrases[0]
}

// Default returns the deterministic default phrase.
func (p *Provider) Default() string { return phrases[0] }

// List returns a copy of the catalogue in its fixed order.
// Callers may freely modify the returned slice.
func (p *Provider) List() []string { return slices.Clone(phrases) }
