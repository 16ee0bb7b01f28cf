package catalog

// Document keys.
const (
	keyDefaultShop = "default_shop"
	keyShops       = "shops"

	keyType            = "type"
	keyTrades          = "trades"
	keyDisplayName     = "display_name"
	keyProfession      = "profession"
	keyLevel           = "level"
	keyMaxUses         = "max_uses"
	keyExperience      = "experience"
	keyPriceMultiplier = "price_multiplier"
	keyBuyXP           = "buy_xp"

	keyItem         = "item"
	keyTrade        = "trade"
	keyEnchantments = "enchantments"
)

var (
	topLevelKeys = keySet(keyDefaultShop, keyShops)
	shopKeys     = keySet(keyType, keyTrades, keyDisplayName, keyProfession, keyLevel, keyMaxUses,
		keyExperience, keyPriceMultiplier, keyBuyXP)
	tradeKeys = keySet(keyItem, keyTrade, keyEnchantments, keyType)
)

func keySet(keys ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}

	return m
}

// Diagnostic codes recorded by the compilers.
const (
	CodeUnknownKey         = "unknown_key"
	CodeInvalidField       = "invalid_field"
	CodeInvalidRoot        = "invalid_root"
	CodeMergeCycle         = "merge_cycle"
	CodeNoShops            = "no_shops"
	CodeInvalidShop        = "invalid_shop"
	CodeShopOverridden     = "shop_overridden"
	CodeEmptyShop          = "empty_shop"
	CodeInvalidTrade       = "invalid_trade"
	CodeNoIngredients      = "no_ingredients"
	CodeTooManyIngredients = "too_many_ingredients"
	CodeNoResult           = "no_result"
)
