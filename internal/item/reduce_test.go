package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopkeeper/internal/diagnostic"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		results  []Descriptor
		expected Descriptor
	}{
		{
			name:     "single entry",
			results:  []Descriptor{{Kind: "emerald", Quantity: 4}},
			expected: Descriptor{Kind: "emerald", Quantity: 4},
		},
		{
			name: "same kind merged, other kinds discarded",
			results: []Descriptor{
				{Kind: "diamond", Quantity: 1},
				{Kind: "diamond", Quantity: 2},
				{Kind: "gold_ingot", Quantity: 5},
			},
			expected: Descriptor{Kind: "diamond", Quantity: 3},
		},
		{
			name: "base is the first entry",
			results: []Descriptor{
				{Kind: "gold_ingot", Quantity: 5},
				{Kind: "diamond", Quantity: 1},
				{Kind: "diamond", Quantity: 2},
			},
			expected: Descriptor{Kind: "gold_ingot", Quantity: 5},
		},
		{
			name: "capped at max stack",
			results: []Descriptor{
				{Kind: "ender_pearl", Quantity: 10},
				{Kind: "ender_pearl", Quantity: 10},
				{Kind: "ender_pearl", Quantity: 10},
			},
			expected: Descriptor{Kind: "ender_pearl", Quantity: 16},
		},
		{
			name: "base keeps its variant",
			results: []Descriptor{
				{Kind: "tipped_arrow", Quantity: 8, Variant: "poison"},
				{Kind: "tipped_arrow", Quantity: 8, Variant: "healing"},
			},
			expected: Descriptor{Kind: "tipped_arrow", Quantity: 16, Variant: "poison"},
		},
	}

	p := newTestParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Reduce(tt.results, diagnostic.Scope{})
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReduceEmpty(t *testing.T) {
	_, ok := newTestParser().Reduce(nil, diagnostic.Scope{})
	assert.False(t, ok)
}

func TestReduceRecordsMerge(t *testing.T) {
	var diags diagnostic.Diagnostics

	p := newTestParser()

	_, _ = p.Reduce([]Descriptor{{Kind: "diamond", Quantity: 1}}, diags.At("s", "trade"))
	assert.Zero(t, diags.Len(), "a single result is not a reduction")

	_, _ = p.Reduce([]Descriptor{{Kind: "diamond", Quantity: 1}, {Kind: "stone", Quantity: 1}}, diags.At("s", "trade"))
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, CodeResultsMerged, diags.Entries[0].Code)
	assert.Equal(t, diagnostic.SeverityInfo, diags.Entries[0].Severity)
}

func TestReduceDoesNotAlias(t *testing.T) {
	src := []Descriptor{{Kind: "diamond_sword", Quantity: 1, Enchantments: []Enchantment{{"sharpness", 5}}}}

	got, ok := newTestParser().Reduce(src, diagnostic.Scope{})
	require.True(t, ok)

	got.Enchantments[0].Level = 1
	got.Quantity = 9
	assert.Equal(t, 5, src[0].Enchantments[0].Level)
	assert.Equal(t, 1, src[0].Quantity)
}
