package catalog

import (
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"shopkeeper/internal/diagnostic"
)

const mergeKey = "<<"

// field is one key/value pair of a mapping node.
type field struct {
	key   string
	value *yaml.Node
}

// resolve unwraps document nodes and follows aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}

			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}

	return nil
}

// isNull reports whether n is absent, an empty document or an explicit null.
func isNull(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// fields returns the pairs of a mapping node in document order. Merge keys
// ("<<: *anchor") are expanded in place, so explicit keys after them win.
// A merge that leads back into a mapping already being expanded is reported
// as an error on scope and skipped.
func fields(n *yaml.Node, scope diagnostic.Scope) []field {
	return collectFields(n, scope, map[*yaml.Node]bool{})
}

func collectFields(n *yaml.Node, scope diagnostic.Scope, active map[*yaml.Node]bool) []field {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}

	active[n] = true
	defer delete(active, n)

	var out []field

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), n.Content[i+1]
		if k == nil {
			continue
		}

		if k.Value == mergeKey && k.ShortTag() == "!!merge" {
			out = append(out, mergedFields(v, scope.Field(mergeKey), active)...)
			continue
		}

		out = append(out, field{key: k.Value, value: v})
	}

	return out
}

func mergedFields(v *yaml.Node, scope diagnostic.Scope, active map[*yaml.Node]bool) []field {
	v = resolve(v)
	if v == nil {
		return nil
	}

	sources := []*yaml.Node{v}
	if v.Kind == yaml.SequenceNode {
		sources = v.Content
	}

	var out []field

	for _, m := range sources {
		m = resolve(m)
		if m == nil {
			continue
		}

		if active[m] {
			scope.Errorf(CodeMergeCycle, "merge at line %d refers back to a mapping it is part of; ignoring it", m.Line)
			continue
		}

		out = append(out, collectFields(m, scope, active)...)
	}

	return out
}

// lookup collapses fields into a map; later keys win.
func lookup(fs []field) map[string]*yaml.Node {
	m := make(map[string]*yaml.Node, len(fs))
	for _, f := range fs {
		m[f.key] = f.value
	}

	return m
}

// checkKeys records a warning for every key outside allowed.
func checkKeys(fs []field, allowed map[string]struct{}, what string, scope diagnostic.Scope) {
	seen := map[string]struct{}{}

	for _, f := range fs {
		if _, ok := allowed[f.key]; ok {
			continue
		}

		if _, dup := seen[f.key]; dup {
			continue
		}

		seen[f.key] = struct{}{}
		scope.Field(f.key).Warnf(CodeUnknownKey, "unknown %s key %q", what, f.key)
	}
}

// stringValue reads a scalar as text. Absent or null values yield def silently;
// non-scalars yield def with a warning.
func stringValue(n *yaml.Node, def string, scope diagnostic.Scope) string {
	if isNull(n) {
		return def
	}

	n = resolve(n)
	if n.Kind != yaml.ScalarNode {
		scope.Warnf(CodeInvalidField, "expected text, got %s; using %q", kindName(n), def)
		return def
	}

	return n.Value
}

// intValue reads an integer in the 32-bit range. Floats are truncated;
// anything else, including values out of range, yields def with a warning.
func intValue(n *yaml.Node, def int, scope diagnostic.Scope) int {
	if isNull(n) {
		return def
	}

	n = resolve(n)

	if v, ok := numberOf(n); ok && v >= math.MinInt32 && v <= math.MaxInt32 {
		return int(v)
	}

	scope.Warnf(CodeInvalidField, "expected a whole number in 32-bit range, got %s; using %d", describe(n), def)

	return def
}

// floatValue reads a finite number. Anything else yields def with a warning.
func floatValue(n *yaml.Node, def float64, scope diagnostic.Scope) float64 {
	if isNull(n) {
		return def
	}

	n = resolve(n)

	if v, ok := numberOf(n); ok {
		return v
	}

	scope.Warnf(CodeInvalidField, "expected a finite number, got %s; using %g", describe(n), def)

	return def
}

// numberOf decodes an int or float scalar. NaN and infinities are rejected.
func numberOf(n *yaml.Node) (float64, bool) {
	if n.Kind != yaml.ScalarNode || (n.ShortTag() != "!!int" && n.ShortTag() != "!!float") {
		return 0, false
	}

	var v float64
	if err := n.Decode(&v); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// describe renders a node for diagnostics.
func describe(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return "\"" + n.Value + "\""
	}

	return kindName(n)
}

// kindNameOf is kindName for nodes that may be nil.
func kindNameOf(n *yaml.Node) string {
	if n == nil {
		return "nothing"
	}

	return kindName(n)
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a " + strings.TrimPrefix(n.ShortTag(), "!!")
	default:
		return "an unsupported node"
	}
}
