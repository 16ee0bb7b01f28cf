package diagnostic

import (
	"fmt"
	"strconv"
)

// Scope records diagnostics against a fixed shop and config path.
// The zero Scope discards everything recorded through it.
type Scope struct {
	sink *Diagnostics
	shop string
	path string
}

// At returns a Scope that appends to d with the given shop and path context.
func (d *Diagnostics) At(shop, path string) Scope {
	return Scope{sink: d, shop: shop, path: path}
}

// Shop returns the shop id the scope reports against.
func (s Scope) Shop() string { return s.shop }

// Path returns the config path the scope reports against.
func (s Scope) Path() string { return s.path }

// Field narrows the scope to a named child, e.g. "trades" -> "shops.x.trades".
func (s Scope) Field(name string) Scope {
	if s.path == "" {
		s.path = name
	} else {
		s.path = s.path + "." + name
	}

	return s
}

// Index narrows the scope to a sequence element, e.g. "trades" -> "trades[3]".
func (s Scope) Index(i int) Scope {
	s.path = s.path + "[" + strconv.Itoa(i) + "]"
	return s
}

// Errorf records an error.
func (s Scope) Errorf(code, format string, args ...any) {
	s.record(SeverityError, code, nil, format, args...)
}

// Warnf records a warning.
func (s Scope) Warnf(code, format string, args ...any) {
	s.record(SeverityWarning, code, nil, format, args...)
}

// Infof records an informational note.
func (s Scope) Infof(code, format string, args ...any) {
	s.record(SeverityInfo, code, nil, format, args...)
}

// Suggestf records a warning carrying "did you mean" suggestions.
func (s Scope) Suggestf(code string, suggestions []string, format string, args ...any) {
	s.record(SeverityWarning, code, suggestions, format, args...)
}

func (s Scope) record(sev Severity, code string, suggestions []string, format string, args ...any) {
	if s.sink == nil {
		return
	}

	s.sink.Add(Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     fmt.Sprintf(format, args...),
		Shop:        s.shop,
		Path:        s.path,
		Suggestions: suggestions,
	})
}
