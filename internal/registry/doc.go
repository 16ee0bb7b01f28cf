// Package registry resolves item kinds, enchantments, and item variants by
// their normalized identifier.
//
// The shop compiler only ever talks to the Registry interface, so the
// built-in table can be replaced or extended without touching the parser.
// Keys passed to lookups are expected in match.NormalizeKey form.
//
// # Data file
//
// Static registries are described in YAML:
//
//	kinds:
//	  - max_stack: 64
//	    ids: [cobblestone, diamond]
//	  - max_stack: 1
//	    variants: true           # accepts a potion-style variant
//	    ids: [potion]
//	  - max_stack: 64
//	    item: false              # exists, but cannot be held
//	    ids: [water]
//	  - max_stack: 64
//	    placeholder: true        # an empty slot
//	    ids: [air]
//	enchantments: [sharpness, mending]
//	variants: [healing, strong_healing]
package registry
