package item

// Diagnostic codes recorded by the parser.
const (
	CodeEmptyItem          = "empty_item"
	CodeInvalidQuantity    = "invalid_quantity"
	CodeQuantityClamped    = "quantity_clamped"
	CodeUnknownKind        = "unknown_kind"
	CodeUnknownVariant     = "unknown_variant"
	CodeEmptyEnchantment   = "empty_enchantment"
	CodeInvalidLevel       = "invalid_enchant_level"
	CodeLevelClamped       = "enchant_level_clamped"
	CodeUnknownEnchantment = "unknown_enchantment"
	CodeResultsMerged      = "results_merged"
)

// Enchantment level bounds.
const (
	MinEnchantLevel = 1
	MaxEnchantLevel = 255
)

// suggestionLimit caps "did you mean" candidates per diagnostic.
const suggestionLimit = 3
