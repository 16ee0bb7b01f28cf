package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostics holds the records emitted by one compile pass, in emission order.
type Diagnostics struct {
	Entries []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Shop identifies which shop this relates to (if any).
	Shop string
	// Path is the config path the record points at, e.g. "shops.armory.trades[2].item".
	Path string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Add appends a fully built diagnostic.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.Entries = append(d.Entries, diag)
}

// Errors returns the error diagnostics.
func (d *Diagnostics) Errors() []Diagnostic { return d.filter(SeverityError) }

// Warnings returns the warning diagnostics.
func (d *Diagnostics) Warnings() []Diagnostic { return d.filter(SeverityWarning) }

// Infos returns the info diagnostics.
func (d *Diagnostics) Infos() []Diagnostic { return d.filter(SeverityInfo) }

func (d *Diagnostics) filter(sev Severity) []Diagnostic {
	var out []Diagnostic

	for _, e := range d.Entries {
		if e.Severity == sev {
			out = append(out, e)
		}
	}

	return out
}

// Len returns the number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Entries)
}

// Has returns true if any diagnostic carries the given code.
func (d *Diagnostics) Has(code string) bool {
	return d.Count(code) > 0
}

// Count returns how many diagnostics carry the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, e := range d.Entries {
		if e.Code == code {
			n++
		}
	}

	return n
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, e := range d.Entries {
		if e.Severity == SeverityError {
			return true
		}
	}

	return false
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Shop != "" {
		prefix = append(prefix, "["+d.Shop+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
