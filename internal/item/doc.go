// Package item parses the compact item and enchantment grammar used in shop
// configs into Descriptor values.
//
// # Grammar
//
//	item        = kind [ ":" quantity [ ":" variant ] ]
//	item-list   = item { "," item }
//	enchantment = name [ ":" level ]
//	enchantment-list = enchantment { "," enchantment }
//
// Kinds, variants and enchantment names are case-insensitive; spaces and
// dashes are equivalent to underscores. Examples:
//
//	cobblestone:64
//	diamond sword:1
//	potion:1:strong_healing
//	tipped_arrow:8:poison
//	sharpness:5,unbreaking:3,mending
//
// # Recovery policy
//
// A bad quantity falls back to 1 and a bad enchantment level to 1; both are
// recorded as warnings. An unknown or non-holdable kind rejects the item, and
// an unknown enchantment drops only that entry. List parsers skip rejected
// entries and keep going.
package item
