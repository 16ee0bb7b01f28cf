package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopkeeper/internal/diagnostic"
)

func TestParseEnchantments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Enchantment
		codes    []string
	}{
		{"single with level", "sharpness:5", []Enchantment{{"sharpness", 5}}, nil},
		{"default level", "mending", []Enchantment{{"mending", 1}}, nil},
		{"empty level", "mending:", []Enchantment{{"mending", 1}}, nil},
		{
			"several",
			"sharpness:5, Unbreaking:3 ,fire aspect:2",
			[]Enchantment{{"sharpness", 5}, {"unbreaking", 3}, {"fire_aspect", 2}},
			nil,
		},
		{"level too high", "efficiency:300", []Enchantment{{"efficiency", 255}}, []string{CodeLevelClamped}},
		{"level too low", "efficiency:0", []Enchantment{{"efficiency", 1}}, []string{CodeLevelClamped}},
		{"level not a number", "efficiency:max", []Enchantment{{"efficiency", 1}}, []string{CodeInvalidLevel}},
		{
			"unknown dropped, rest kept",
			"sharpness:5,sharpnes:2,looting:3",
			[]Enchantment{{"sharpness", 5}, {"looting", 3}},
			[]string{CodeUnknownEnchantment},
		},
		{"empty entry", "sharpness:1,,looting", []Enchantment{{"sharpness", 1}, {"looting", 1}}, []string{CodeEmptyEnchantment}},
		{"blank", "   ", nil, nil},
	}

	p := newTestParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags diagnostic.Diagnostics

			got := p.ParseEnchantments(tt.input, diags.At("s", "enchantments"))
			assert.Equal(t, tt.expected, got)

			var codes []string
			for _, d := range diags.Entries {
				codes = append(codes, d.Code)
			}

			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestParseEnchantmentsSuggests(t *testing.T) {
	var diags diagnostic.Diagnostics

	newTestParser().ParseEnchantments("sharpnes:2", diags.At("s", "enchantments"))
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "enchantments[0]", diags.Entries[0].Path)
	require.NotEmpty(t, diags.Entries[0].Suggestions)
	assert.Equal(t, "sharpness", diags.Entries[0].Suggestions[0])
}
