package item

import (
	"math"

	"shopkeeper/internal/common"
	"shopkeeper/internal/diagnostic"
)

// Reduce collapses a list of result items into the single result a trade can
// hold. The first entry is the base; later entries of the same kind add their
// quantity to it, capped at the kind's max stack, and entries of any other
// kind are discarded. It returns false for an empty list.
func (p *Parser) Reduce(results []Descriptor, scope diagnostic.Scope) (Descriptor, bool) {
	first, ok := common.First(results)
	if !ok {
		return Descriptor{}, false
	}

	out := first.Clone()
	if !common.IsMultiple(results) {
		return out, true
	}

	limit := math.MaxInt
	if kind, ok := p.reg.Kind(out.Kind); ok {
		limit = kind.MaxStack
	}

	discarded := 0

	for _, r := range results[1:] {
		if r.Kind != out.Kind {
			discarded++
			continue
		}

		out.Quantity = min(out.Quantity+r.Quantity, limit)
	}

	scope.Infof(CodeResultsMerged, "%d result entries reduced to %s (%d of another kind discarded)",
		len(results), out, discarded)

	return out, true
}
