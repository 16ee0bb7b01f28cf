package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)
	assert.Same(t, reg, Default(), "Default must be built once")

	tests := []struct {
		key         string
		maxStack    int
		item        bool
		variants    bool
		placeholder bool
	}{
		{"diamond", 64, true, false, false},
		{"ender_pearl", 16, true, false, false},
		{"diamond_sword", 1, true, false, false},
		{"potion", 1, true, true, false},
		{"tipped_arrow", 64, true, true, false},
		{"water", 64, false, false, false},
		{"air", 64, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			k, ok := reg.Kind(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.key, k.ID)
			assert.Equal(t, tt.maxStack, k.MaxStack)
			assert.Equal(t, tt.item, k.Item)
			assert.Equal(t, tt.variants, k.Variants)
			assert.Equal(t, tt.placeholder, k.Placeholder)
		})
	}

	_, ok := reg.Kind("Diamond")
	assert.False(t, ok, "lookups take normalized keys")

	_, ok = reg.Enchantment("sharpness")
	assert.True(t, ok)

	v, ok := reg.Variant("strong_healing")
	assert.True(t, ok)
	assert.Equal(t, "strong_healing", v)
}

func TestParse(t *testing.T) {
	data := `
kinds:
  - max_stack: 64
    ids: [Gold Ingot, diamond]
  - max_stack: 1
    variants: true
    ids: [potion]
  - max_stack: 64
    item: false
    ids: [lava]
enchantments: [Fire Aspect]
variants: [healing]
`

	reg, err := Parse([]byte(data))
	require.NoError(t, err)

	k, ok := reg.Kind("gold_ingot")
	require.True(t, ok)
	assert.Equal(t, 64, k.MaxStack)
	assert.True(t, k.Item)

	k, ok = reg.Kind("lava")
	require.True(t, ok)
	assert.False(t, k.Item)

	_, ok = reg.Enchantment("fire_aspect")
	assert.True(t, ok)

	assert.Equal(t, []string{"diamond", "gold_ingot", "lava", "potion"}, reg.KindKeys())
	assert.Equal(t, []string{"fire_aspect"}, reg.EnchantmentKeys())
	assert.Equal(t, []string{"healing"}, reg.VariantKeys())
}

func TestParseEmpty(t *testing.T) {
	reg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, reg.KindKeys())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad stack", "kinds:\n  - max_stack: 0\n    ids: [stone]\n"},
		{"duplicate kind", "kinds:\n  - max_stack: 64\n    ids: [stone, Stone]\n"},
		{"duplicate enchantment", "enchantments: [mending, mending]\n"},
		{"duplicate variant", "variants: [luck, luck]\n"},
		{"unknown field", "kinds:\n  - max_stack: 64\n    colour: red\n"},
		{"syntax", "kinds: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestExtend(t *testing.T) {
	extra, err := Parse([]byte("kinds:\n  - max_stack: 8\n    ids: [diamond, ruby]\n"))
	require.NoError(t, err)

	merged := Default().Extend(extra)

	k, ok := merged.Kind("diamond")
	require.True(t, ok)
	assert.Equal(t, 8, k.MaxStack, "extension overrides base entries")

	_, ok = merged.Kind("ruby")
	assert.True(t, ok)

	base, _ := Default().Kind("diamond")
	assert.Equal(t, 64, base.MaxStack, "Extend must not modify the base registry")

	_, ok = merged.Enchantment("mending")
	assert.True(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yml")
	require.NoError(t, os.WriteFile(path, []byte("variants: [glowing]\n"), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)

	_, ok := reg.Variant("glowing")
	assert.True(t, ok)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
