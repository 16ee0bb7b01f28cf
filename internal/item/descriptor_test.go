package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorClone(t *testing.T) {
	orig := Descriptor{Kind: "bow", Quantity: 1, Enchantments: []Enchantment{{"power", 5}}}
	c := orig.Clone()

	assert.True(t, orig.Equal(c))

	c.Enchantments[0].Level = 1
	assert.Equal(t, 5, orig.Enchantments[0].Level)
	assert.False(t, orig.Equal(c))
}

func TestDescriptorWithEnchantments(t *testing.T) {
	base := Descriptor{Kind: "bow", Quantity: 1, Enchantments: []Enchantment{{"power", 2}, {"flame", 1}}}

	got := base.WithEnchantments([]Enchantment{{"infinity", 1}, {"power", 5}})

	assert.Equal(t, []Enchantment{{"power", 5}, {"flame", 1}, {"infinity", 1}}, got.Enchantments)
	assert.Equal(t, 2, base.Enchantments[0].Level, "WithEnchantments must not modify the receiver")
}

func TestDescriptorString(t *testing.T) {
	tests := []struct {
		d        Descriptor
		expected string
	}{
		{Descriptor{Kind: "diamond", Quantity: 3}, "diamond:3"},
		{Descriptor{Kind: "potion", Quantity: 1, Variant: "healing"}, "potion:1:healing"},
		{
			Descriptor{Kind: "diamond_sword", Quantity: 1, Enchantments: []Enchantment{{"sharpness", 5}, {"mending", 1}}},
			"diamond_sword:1 {sharpness:5,mending:1}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.d.String())
		})
	}
}
