package item

import (
	"strconv"
	"strings"

	"shopkeeper/internal/diagnostic"
	"shopkeeper/internal/match"
	"shopkeeper/internal/registry"
)

// Parser turns item and enchantment strings into descriptors using a registry.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	reg registry.Registry
}

// NewParser creates a Parser backed by reg.
func NewParser(reg registry.Registry) *Parser {
	return &Parser{reg: reg}
}

// ParseItem parses "kind[:quantity[:variant]]". It returns false when the
// text is blank or kind does not resolve to a holdable item.
func (p *Parser) ParseItem(text string, scope diagnostic.Scope) (Descriptor, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		scope.Warnf(CodeEmptyItem, "empty item reference")
		return Descriptor{}, false
	}

	parts := strings.SplitN(text, ":", 3)
	name := strings.TrimSpace(parts[0])

	amount := 1

	if len(parts) >= 2 {
		raw := strings.TrimSpace(parts[1])

		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			scope.Warnf(CodeInvalidQuantity, "invalid amount %q in item %q, using 1", raw, text)
		case n < 1:
			scope.Warnf(CodeInvalidQuantity, "amount %d in item %q is not positive, using 1", n, text)
		default:
			amount = n
		}
	}

	var variant string
	if len(parts) >= 3 {
		variant = strings.TrimSpace(parts[2])
	}

	kind, ok := p.reg.Kind(match.NormalizeKey(name))
	if !ok || !kind.Item {
		scope.Suggestf(CodeUnknownKind, p.suggest(name, kindKeys), "unknown or non-item kind %q", name)
		return Descriptor{}, false
	}

	if amount > kind.MaxStack {
		scope.Infof(CodeQuantityClamped, "amount %d in item %q exceeds max stack %d, using %d",
			amount, text, kind.MaxStack, kind.MaxStack)
		amount = kind.MaxStack
	}

	d := Descriptor{Kind: kind.ID, Quantity: amount}

	if kind.Variants && variant != "" {
		v, ok := p.reg.Variant(match.NormalizeKey(variant))
		if ok {
			d.Variant = v
		} else {
			scope.Suggestf(CodeUnknownVariant, p.suggest(variant, variantKeys),
				"unknown variant %q for %s, ignoring it", variant, kind.ID)
		}
	}

	return d, true
}

// ParseItemList parses a comma-separated item list. Entries that fail to
// parse are skipped; the rest keep their order.
func (p *Parser) ParseItemList(text string, scope diagnostic.Scope) []Descriptor {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []Descriptor

	for i, part := range strings.Split(text, ",") {
		if d, ok := p.ParseItem(part, scope.Index(i)); ok {
			out = append(out, d)
		}
	}

	return out
}

type keySet int

const (
	kindKeys keySet = iota
	enchantmentKeys
	variantKeys
)

// suggest returns the closest known keys when the registry can list them.
func (p *Parser) suggest(input string, set keySet) []string {
	lister, ok := p.reg.(registry.Lister)
	if !ok {
		return nil
	}

	var known []string

	switch set {
	case kindKeys:
		known = lister.KindKeys()
	case enchantmentKeys:
		known = lister.EnchantmentKeys()
	case variantKeys:
		known = lister.VariantKeys()
	}

	return match.Suggest(input, known, suggestionLimit)
}
