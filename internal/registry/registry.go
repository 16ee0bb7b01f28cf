package registry

// Kind describes an item kind.
type Kind struct {
	// ID is the normalized registry key, e.g. "diamond_sword".
	ID string
	// MaxStack is the largest quantity a single stack may hold.
	MaxStack int
	// Item is false for kinds that exist in the world but cannot be held.
	Item bool
	// Variants is true for kinds that carry a variant, such as potion contents.
	Variants bool
	// Placeholder is true for kinds that represent an empty slot.
	Placeholder bool
}

// Enchantment describes a known enchantment.
type Enchantment struct {
	ID string
}

// Registry is a read-only lookup service for item metadata.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Kind resolves an item kind by normalized key.
	Kind(key string) (Kind, bool)
	// Enchantment resolves an enchantment by normalized key.
	Enchantment(key string) (Enchantment, bool)
	// Variant resolves a variant by normalized key, returning its canonical id.
	Variant(key string) (string, bool)
}

// Lister is implemented by registries that can enumerate their keys.
// Parsers use it to offer suggestions for unknown identifiers.
type Lister interface {
	KindKeys() []string
	EnchantmentKeys() []string
	VariantKeys() []string
}
