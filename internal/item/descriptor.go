package item

import (
	"slices"
	"strconv"
	"strings"
)

// Descriptor identifies a countable item. It is a plain value: copies made
// with Clone never share storage.
type Descriptor struct {
	// Kind is the normalized registry key of the item kind.
	Kind string
	// Quantity is in [1, max stack of Kind].
	Quantity int
	// Variant is the canonical variant id, empty unless Kind carries variants.
	Variant string
	// Enchantments are applied in order; names are unique.
	Enchantments []Enchantment
}

// Enchantment is a resolved enchantment and its level in [MinEnchantLevel, MaxEnchantLevel].
type Enchantment struct {
	Name  string
	Level int
}

// Clone returns a deep copy of d.
func (d Descriptor) Clone() Descriptor {
	d.Enchantments = slices.Clone(d.Enchantments)
	return d
}

// Equal reports whether two descriptors hold the same values.
func (d Descriptor) Equal(o Descriptor) bool {
	return d.Kind == o.Kind &&
		d.Quantity == o.Quantity &&
		d.Variant == o.Variant &&
		slices.Equal(d.Enchantments, o.Enchantments)
}

// WithEnchantments returns a copy of d with enchants applied. An enchantment
// already present keeps its position and takes the new level.
func (d Descriptor) WithEnchantments(enchants []Enchantment) Descriptor {
	out := d.Clone()

	for _, e := range enchants {
		i := slices.IndexFunc(out.Enchantments, func(x Enchantment) bool { return x.Name == e.Name })
		if i >= 0 {
			out.Enchantments[i].Level = e.Level
			continue
		}

		out.Enchantments = append(out.Enchantments, e)
	}

	return out
}

// String renders d back in item grammar, followed by its enchantments.
// Examples: "diamond:3", "potion:1:healing", "diamond_sword:1 {sharpness:5,mending:1}".
func (d Descriptor) String() string {
	var b strings.Builder

	b.WriteString(d.Kind)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(d.Quantity))

	if d.Variant != "" {
		b.WriteByte(':')
		b.WriteString(d.Variant)
	}

	if len(d.Enchantments) > 0 {
		b.WriteString(" {")

		for i, e := range d.Enchantments {
			if i > 0 {
				b.WriteByte(',')
			}

			b.WriteString(e.String())
		}

		b.WriteByte('}')
	}

	return b.String()
}

// String renders e in enchantment grammar.
func (e Enchantment) String() string {
	return e.Name + ":" + strconv.Itoa(e.Level)
}
