// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package phrase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsalvino/agent/src/phrase"
)

// fixedPicker always picks the same index.
type fixedPicker struct{ index int }

func (f fixedPicker) Pick(n int) int { return f.index % n }

func TestGetDeterministic(t *testing.T) {
	p := phrase.New()

	first := p.Get(false)
	require.NotEmpty(t, first)
	assert.Equal(t, p.Default(), first)

	for range 100 {
		assert.Equal(t, first, p.Get(false), "Get(false) must be deterministic")
	}
}

func TestGetRandomMembership(t *testing.T) {
	p := phrase.New()
	catalogue := p.List()
	require.NotEmpty(t, catalogue)

	for range 1000 {
		got := p.Get(true)
		assert.Contains(t, catalogue, got, "random phrase must be a catalogue member")
	}
}

func TestGetRandomDistribution(t *testing.T) {
	p := phrase.New()

	seen := make(map[string]struct{})
	for range 1000 {
		seen[p.Get(true)] = struct{}{}
	}

	// With four phrases and 1000 trials, seeing a single value means the
	// random source is broken.
	assert.Greater(t, len(seen), 1, "expected more than one distinct phrase over 1000 trials")
}

func TestNewWithPicker(t *testing.T) {
	catalogue := phrase.New().List()

	for i := range catalogue {
		p := phrase.NewWithPicker(fixedPicker{index: i})
		assert.Equal(t, catalogue[i], p.Get(true))
	}

	// Stubbed picker must not affect the deterministic path.
	p := phrase.NewWithPicker(fixedPicker{index: 2})
	assert.Equal(t, p.Default(), p.Get(false))
}

func TestNewWithPickerNil(t *testing.T) {
	p := phrase.NewWithPicker(nil)
	require.NotNil(t, p)

	// Falls back to the random picker; result must still be a member.
	assert.Contains(t, p.List(), p.Get(true))
}

func TestListIsACopy(t *testing.T) {
	p := phrase.New()

	list := p.List()
	require.NotEmpty(t, list)
	original := list[0]

	list[0] = "mutated"
	assert.Equal(t, original, p.Default(), "mutating List result must not affect the catalogue")
}
