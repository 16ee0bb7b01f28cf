package catalog

import (
	"slices"
	"sort"
	"strings"

	"shopkeeper/internal/common"
	"shopkeeper/internal/item"
)

// Shop defaults applied when a field is absent or unusable.
const (
	DefaultDisplayName     = "IVillager"
	DefaultLevel           = 1
	DefaultMaxUses         = 999999
	DefaultExperience      = 0
	DefaultPriceMultiplier = 0.05
	DefaultBuyXP           = 0
)

// MaxIngredients is the most ingredients a trade can hold.
const MaxIngredients = 2

// Trade is one exchange: one or two ingredients for exactly one result.
type Trade struct {
	Ingredients []item.Descriptor
	Result      item.Descriptor
}

// Clone returns a deep copy of t.
func (t Trade) Clone() Trade {
	return Trade{
		Ingredients: common.Map(t.Ingredients, item.Descriptor.Clone),
		Result:      t.Result.Clone(),
	}
}

// Shop is a named collection of trades plus presentation and economy settings.
type Shop struct {
	// ID is the lower-cased config key; never empty.
	ID          string
	DisplayName string
	// Profession is passed through to the presentation layer unvalidated.
	Profession      string
	Trades          []Trade
	Level           int
	MaxUses         int
	Experience      int
	PriceMultiplier float64
	BuyXP           int
}

// Clone returns a deep copy of s.
func (s Shop) Clone() Shop {
	s.Trades = common.Map(s.Trades, Trade.Clone)
	return s
}

// NormalizeID folds a shop name into catalog key form.
func NormalizeID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Catalog is an immutable snapshot of compiled shops.
type Catalog struct {
	shops       map[string]Shop
	defaultShop string
}

// NewCatalog builds a catalog from shops keyed by id. Keys are normalized;
// the map is copied.
func NewCatalog(shops map[string]Shop, defaultShop string) *Catalog {
	c := &Catalog{
		shops:       make(map[string]Shop, len(shops)),
		defaultShop: strings.TrimSpace(defaultShop),
	}

	for id, s := range shops {
		c.shops[NormalizeID(id)] = s.Clone()
	}

	return c
}

// Empty returns a catalog with no shops.
func Empty() *Catalog {
	return NewCatalog(nil, "")
}

// Len returns the number of shops.
func (c *Catalog) Len() int {
	return len(c.shops)
}

// Has reports whether a shop exists, ignoring case.
func (c *Catalog) Has(id string) bool {
	_, ok := c.shops[NormalizeID(id)]
	return ok
}

// Shop returns a copy of the shop with the given id, ignoring case.
func (c *Catalog) Shop(id string) (Shop, bool) {
	s, ok := c.shops[NormalizeID(id)]
	if !ok {
		return Shop{}, false
	}

	return s.Clone(), true
}

// DefaultShopID returns the configured default shop, or "" when unset.
// The id is not guaranteed to exist in the catalog.
func (c *Catalog) DefaultShopID() string {
	return c.defaultShop
}

// Default returns the default shop if one is configured and exists.
func (c *Catalog) Default() (Shop, bool) {
	if c.defaultShop == "" {
		return Shop{}, false
	}

	return c.Shop(c.defaultShop)
}

// ShopIDs returns all shop ids in ascending order.
func (c *Catalog) ShopIDs() []string {
	ids := make([]string, 0, len(c.shops))
	for id := range c.shops {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Shops returns copies of all shops ordered by id.
func (c *Catalog) Shops() []Shop {
	ids := c.ShopIDs()

	out := make([]Shop, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.shops[id].Clone())
	}

	return out
}

// Equal reports whether two catalogs hold the same shops and default.
func (c *Catalog) Equal(o *Catalog) bool {
	if c.defaultShop != o.defaultShop || len(c.shops) != len(o.shops) {
		return false
	}

	for id, s := range c.shops {
		os, ok := o.shops[id]
		if !ok || !s.equal(os) {
			return false
		}
	}

	return true
}

func (s Shop) equal(o Shop) bool {
	return s.ID == o.ID &&
		s.DisplayName == o.DisplayName &&
		s.Profession == o.Profession &&
		s.Level == o.Level &&
		s.MaxUses == o.MaxUses &&
		s.Experience == o.Experience &&
		s.PriceMultiplier == o.PriceMultiplier &&
		s.BuyXP == o.BuyXP &&
		slices.EqualFunc(s.Trades, o.Trades, Trade.equal)
}

func (t Trade) equal(o Trade) bool {
	return t.Result.Equal(o.Result) && slices.EqualFunc(t.Ingredients, o.Ingredients, item.Descriptor.Equal)
}
