// Package diagnostic provides structured warnings, errors, and informational
// records produced while compiling a shop configuration.
//
// Compilers never log. They append to a Diagnostics value that travels next
// to the compiled result, and callers decide where the records go.
//
// Key capabilities:
//   - Severity-tagged records with a stable code
//   - Shop id and config path context on every record
//   - "did you mean" suggestions for unknown identifiers
package diagnostic
