package registry

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"shopkeeper/internal/match"
)

//go:embed data/registry.yaml
var defaultData []byte

// Static is an in-memory Registry. It is immutable once built and safe for
// concurrent reads.
type Static struct {
	kinds        map[string]Kind
	enchantments map[string]Enchantment
	variants     map[string]string
}

var (
	_ Registry = (*Static)(nil)
	_ Lister   = (*Static)(nil)
)

// document mirrors the YAML data file.
type document struct {
	Kinds        []kindGroup `yaml:"kinds"`
	Enchantments []string    `yaml:"enchantments"`
	Variants     []string    `yaml:"variants"`
}

type kindGroup struct {
	MaxStack    int      `yaml:"max_stack"`
	Item        *bool    `yaml:"item"`
	Variants    bool     `yaml:"variants"`
	Placeholder bool     `yaml:"placeholder"`
	IDs         []string `yaml:"ids"`
}

// Default returns the built-in registry.
var Default = sync.OnceValue(func() *Static {
	s, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("registry: built-in data is invalid: %v", err))
	}

	return s
})

// LoadFile loads and parses a YAML registry file from the given path.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Static registry.
// Unknown fields, non-positive stack sizes and duplicate ids are rejected.
func Parse(data []byte) (*Static, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
	}

	s := newStatic()

	for gi, g := range doc.Kinds {
		if g.MaxStack < 1 {
			return nil, fmt.Errorf("kinds[%d]: max_stack must be >= 1, got %d", gi, g.MaxStack)
		}

		item := true
		if g.Item != nil {
			item = *g.Item
		}

		for _, id := range g.IDs {
			key := match.NormalizeKey(id)
			if key == "" {
				return nil, fmt.Errorf("kinds[%d]: empty id", gi)
			}

			if _, dup := s.kinds[key]; dup {
				return nil, fmt.Errorf("kinds[%d]: duplicate kind %q", gi, key)
			}

			s.kinds[key] = Kind{
				ID:          key,
				MaxStack:    g.MaxStack,
				Item:        item,
				Variants:    g.Variants,
				Placeholder: g.Placeholder,
			}
		}
	}

	for _, id := range doc.Enchantments {
		key := match.NormalizeKey(id)
		if _, dup := s.enchantments[key]; dup || key == "" {
			return nil, fmt.Errorf("enchantments: invalid or duplicate id %q", id)
		}

		s.enchantments[key] = Enchantment{ID: key}
	}

	for _, id := range doc.Variants {
		key := match.NormalizeKey(id)
		if _, dup := s.variants[key]; dup || key == "" {
			return nil, fmt.Errorf("variants: invalid or duplicate id %q", id)
		}

		s.variants[key] = key
	}

	return s, nil
}

func newStatic() *Static {
	return &Static{
		kinds:        map[string]Kind{},
		enchantments: map[string]Enchantment{},
		variants:     map[string]string{},
	}
}

// Extend returns a new registry holding s's entries overlaid with other's.
// Entries in other replace entries in s with the same key.
func (s *Static) Extend(other *Static) *Static {
	out := newStatic()

	for _, src := range []*Static{s, other} {
		if src == nil {
			continue
		}

		for k, v := range src.kinds {
			out.kinds[k] = v
		}

		for k, v := range src.enchantments {
			out.enchantments[k] = v
		}

		for k, v := range src.variants {
			out.variants[k] = v
		}
	}

	return out
}

// Kind implements Registry.
func (s *Static) Kind(key string) (Kind, bool) {
	k, ok := s.kinds[key]
	return k, ok
}

// Enchantment implements Registry.
func (s *Static) Enchantment(key string) (Enchantment, bool) {
	e, ok := s.enchantments[key]
	return e, ok
}

// Variant implements Registry.
func (s *Static) Variant(key string) (string, bool) {
	v, ok := s.variants[key]
	return v, ok
}

// KindKeys implements Lister.
func (s *Static) KindKeys() []string { return sortedKeys(s.kinds) }

// EnchantmentKeys implements Lister.
func (s *Static) EnchantmentKeys() []string { return sortedKeys(s.enchantments) }

// VariantKeys implements Lister.
func (s *Static) VariantKeys() []string { return sortedKeys(s.variants) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
