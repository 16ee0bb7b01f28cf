package recipe

import (
	"math"

	"shopkeeper/internal/catalog"
	"shopkeeper/internal/common"
	"shopkeeper/internal/item"
	"shopkeeper/internal/registry"
)

// Recipe is one presentable trade with every shop default resolved.
// Each Recipe owns its descriptors; none are shared with the source shop
// or with other recipes.
type Recipe struct {
	Ingredients     []item.Descriptor
	Result          item.Descriptor
	MaxUses         int
	PriceMultiplier float64
	BuyXP           int
}

// Projector builds recipes from shops.
type Projector struct {
	reg registry.Registry
}

// NewProjector creates a Projector that uses reg to recognise empty-slot
// placeholder kinds.
func NewProjector(reg registry.Registry) *Projector {
	return &Projector{reg: reg}
}

// Project returns fresh recipes for every usable trade of shop, in trade
// order. Placeholder ingredients are dropped; a trade left with no
// ingredients, or with an empty result, is skipped.
func (p *Projector) Project(shop catalog.Shop) []Recipe {
	maxUses := shop.MaxUses
	if maxUses <= 0 {
		maxUses = catalog.DefaultMaxUses
	}

	multiplier := shop.PriceMultiplier
	if !(multiplier > 0) || math.IsInf(multiplier, 1) {
		multiplier = catalog.DefaultPriceMultiplier
	}

	out := make([]Recipe, 0, len(shop.Trades))

	for _, t := range shop.Trades {
		if t.Result.Kind == "" || t.Result.Quantity < 1 {
			continue
		}

		var ingredients []item.Descriptor

		for _, in := range t.Ingredients {
			if p.isPlaceholder(in) {
				continue
			}

			ingredients = append(ingredients, in.Clone())
		}

		if common.IsEmpty(ingredients) {
			continue
		}

		ingredients, _ = common.Take(ingredients, catalog.MaxIngredients)

		out = append(out, Recipe{
			Ingredients:     ingredients,
			Result:          t.Result.Clone(),
			MaxUses:         maxUses,
			PriceMultiplier: multiplier,
			BuyXP:           shop.BuyXP,
		})
	}

	return out
}

func (p *Projector) isPlaceholder(d item.Descriptor) bool {
	if d.Kind == "" || d.Quantity < 1 {
		return true
	}

	k, ok := p.reg.Kind(d.Kind)

	return ok && k.Placeholder
}
