// Package catalog compiles a shop configuration document into an immutable
// Catalog and keeps the current Catalog available to concurrent readers.
//
// # Document
//
//	default_shop: armory
//	shops:
//	  armory:
//	    display_name: "Armory"
//	    profession: weaponsmith
//	    max_uses: 12
//	    price_multiplier: 0.1
//	    trades:
//	      - item: emerald:20
//	        trade: diamond_sword:1
//	        enchantments: sharpness:5,unbreaking:3
//	      - item: [emerald:10, book:1]
//	        trade: [diamond:1, diamond:2]
//
// # Compilation
//
// Compile walks the document top-down: the config level validates top-level
// keys and drives one shop compile per entry under "shops"; each shop applies
// field defaults and compiles its trades; each trade parses its ingredient,
// result and enchantment fields with an item.Parser.
//
// Nothing short of a YAML syntax error fails a compile. Unknown keys,
// wrong-typed fields and unparsable entries are recorded as diagnostics and
// replaced by documented defaults; a trade with no usable ingredient or
// result is dropped from its shop; a shop with no trades is kept.
//
// # Snapshots
//
// A Catalog is never modified after Compile returns. Store publishes a new
// Catalog on every load with an atomic pointer swap, so readers always see
// either the old or the new catalog in full. Store mutations (Load, CreateShop,
// DeleteShop) must be serialized by the caller.
package catalog
