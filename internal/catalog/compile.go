package catalog

import (
	"strings"

	"gopkg.in/yaml.v3"

	"shopkeeper/internal/common"
	"shopkeeper/internal/diagnostic"
	"shopkeeper/internal/item"
	"shopkeeper/internal/registry"
)

// Compiler turns a parsed config document into a Catalog. It holds no
// mutable state; one Compiler may serve any number of compiles.
type Compiler struct {
	parser *item.Parser
}

// NewCompiler creates a Compiler resolving items against reg.
func NewCompiler(reg registry.Registry) *Compiler {
	return &Compiler{parser: item.NewParser(reg)}
}

// Compile compiles a whole document. It never fails: problems are reported
// in the returned diagnostics and the catalog holds whatever compiled.
func (c *Compiler) Compile(doc *yaml.Node) (*Catalog, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	root := diags.At("", "")

	if n := resolve(doc); !isNull(n) && n.Kind != yaml.MappingNode {
		root.Warnf(CodeInvalidRoot, "config root must be a mapping, got %s; catalog is empty", kindName(n))
		return Empty(), diags
	}

	fs := fields(doc, root)
	checkKeys(fs, topLevelKeys, "top-level", root)

	values := lookup(fs)

	defaultShop := strings.TrimSpace(stringValue(values[keyDefaultShop], "", root.Field(keyDefaultShop)))

	shopsNode := resolve(values[keyShops])
	shopsScope := root.Field(keyShops)

	shops := map[string]Shop{}
	origin := map[string]string{}

	switch {
	case isNull(shopsNode):
		root.Infof(CodeNoShops, "no %q section; catalog is empty", keyShops)
	case shopsNode.Kind != yaml.MappingNode:
		shopsScope.Warnf(CodeInvalidField, "expected a mapping of shops, got %s; catalog is empty", kindName(shopsNode))
	default:
		for _, f := range fields(shopsNode, shopsScope) {
			id := NormalizeID(f.key)
			scope := diags.At(id, keyShops).Field(f.key)

			if id == "" {
				scope.Warnf(CodeInvalidShop, "shop key is empty, skipping")
				continue
			}

			if resolve(f.value) == nil || resolve(f.value).Kind != yaml.MappingNode {
				scope.Warnf(CodeInvalidShop, "shop %q is not a mapping, skipping", f.key)
				continue
			}

			if prev, dup := origin[id]; dup {
				scope.Infof(CodeShopOverridden, "shop %q replaces earlier %q with the same id", f.key, prev)
			}

			shops[id] = c.CompileShop(f.key, f.value, scope)
			origin[id] = f.key
		}
	}

	return NewCatalog(shops, defaultShop), diags
}

// CompileShop compiles one shop record. It always returns a Shop; fields
// that are absent or unusable take their defaults and trades that fail to
// compile are dropped.
func (c *Compiler) CompileShop(key string, node *yaml.Node, scope diagnostic.Scope) Shop {
	fs := fields(node, scope)
	checkKeys(fs, shopKeys, "shop", scope)

	values := lookup(fs)

	shop := Shop{
		ID:              NormalizeID(key),
		DisplayName:     stringValue(values[keyDisplayName], DefaultDisplayName, scope.Field(keyDisplayName)),
		Profession:      strings.TrimSpace(stringValue(values[keyProfession], "", scope.Field(keyProfession))),
		Level:           intValue(values[keyLevel], DefaultLevel, scope.Field(keyLevel)),
		MaxUses:         intValue(values[keyMaxUses], DefaultMaxUses, scope.Field(keyMaxUses)),
		Experience:      intValue(values[keyExperience], DefaultExperience, scope.Field(keyExperience)),
		PriceMultiplier: floatValue(values[keyPriceMultiplier], DefaultPriceMultiplier, scope.Field(keyPriceMultiplier)),
		BuyXP:           intValue(values[keyBuyXP], DefaultBuyXP, scope.Field(keyBuyXP)),
	}

	if strings.TrimSpace(shop.DisplayName) == "" {
		shop.DisplayName = DefaultDisplayName
	}

	tradesScope := scope.Field(keyTrades)
	tradesNode := resolve(values[keyTrades])

	switch {
	case isNull(tradesNode):
	case tradesNode.Kind != yaml.SequenceNode:
		tradesScope.Warnf(CodeInvalidField, "expected a list of trades, got %s", kindName(tradesNode))
	default:
		for i, raw := range tradesNode.Content {
			if t, ok := c.CompileTrade(raw, tradesScope.Index(i)); ok {
				shop.Trades = append(shop.Trades, t)
			}
		}
	}

	if len(shop.Trades) == 0 {
		scope.Infof(CodeEmptyShop, "shop %q has no valid trades (empty or all invalid)", key)
	}

	return shop
}

// CompileTrade compiles one trade record. It returns false when the record
// has no usable ingredient or no usable result.
func (c *Compiler) CompileTrade(node *yaml.Node, scope diagnostic.Scope) (Trade, bool) {
	if resolve(node) == nil || resolve(node).Kind != yaml.MappingNode {
		scope.Warnf(CodeInvalidTrade, "trade is not a mapping, skipping")
		return Trade{}, false
	}

	fs := fields(node, scope)
	checkKeys(fs, tradeKeys, "trade", scope)

	values := lookup(fs)

	itemScope := scope.Field(keyItem)
	ingredients := c.parseIngredients(values[keyItem], itemScope)

	if common.IsEmpty(ingredients) {
		scope.Warnf(CodeNoIngredients, "no valid item(s), skipping")
		return Trade{}, false
	}

	ingredients, cut := common.Take(ingredients, MaxIngredients)
	if cut {
		itemScope.Warnf(CodeTooManyIngredients, "more than %d ingredients; using first %d", MaxIngredients, MaxIngredients)
	}

	resultScope := scope.Field(keyTrade)

	result, ok := c.parser.Reduce(c.parseResults(values[keyTrade], resultScope), resultScope)
	if !ok {
		scope.Warnf(CodeNoResult, "no valid result, skipping")
		return Trade{}, false
	}

	enchantScope := scope.Field(keyEnchantments)
	if raw := stringValue(values[keyEnchantments], "", enchantScope); strings.TrimSpace(raw) != "" {
		result = result.WithEnchantments(c.parser.ParseEnchantments(raw, enchantScope))
	}

	return Trade{Ingredients: ingredients, Result: result}, true
}

// parseIngredients accepts a single item string or a sequence of them.
// A single string is one item; commas are not list separators here.
func (c *Compiler) parseIngredients(n *yaml.Node, scope diagnostic.Scope) []item.Descriptor {
	n = resolve(n)
	if isNull(n) {
		return nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if d, ok := c.parser.ParseItem(n.Value, scope); ok {
			return []item.Descriptor{d}
		}

		return nil
	case yaml.SequenceNode:
		return c.parseSequence(n, scope)
	default:
		scope.Warnf(CodeInvalidField, "expected an item or a list of items, got %s", kindName(n))
		return nil
	}
}

// parseResults accepts a single item string, a comma-joined item list, or a
// sequence of item strings.
func (c *Compiler) parseResults(n *yaml.Node, scope diagnostic.Scope) []item.Descriptor {
	n = resolve(n)
	if isNull(n) {
		return nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return c.parser.ParseItemList(n.Value, scope)
	case yaml.SequenceNode:
		return c.parseSequence(n, scope)
	default:
		scope.Warnf(CodeInvalidField, "expected an item or a list of items, got %s", kindName(n))
		return nil
	}
}

// parseSequence parses each scalar element as one item. Failures are
// skipped; non-scalar elements are reported and skipped.
func (c *Compiler) parseSequence(n *yaml.Node, scope diagnostic.Scope) []item.Descriptor {
	var out []item.Descriptor

	for i, el := range n.Content {
		at := scope.Index(i)

		el = resolve(el)
		if el == nil || el.Kind != yaml.ScalarNode {
			at.Warnf(CodeInvalidField, "expected an item, got %s", kindNameOf(el))
			continue
		}

		if d, ok := c.parser.ParseItem(el.Value, at); ok {
			out = append(out, d)
		}
	}

	return out
}
