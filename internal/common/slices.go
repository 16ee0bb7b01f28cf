// Package common holds small generic helpers shared by the parsers.
package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Take returns at most the first n elements of s and whether anything was cut.
// The returned slice never aliases s.
func Take[S ~[]E, E any](s S, n int) (S, bool) {
	if n < 0 {
		n = 0
	}

	if len(s) <= n {
		return append(S(nil), s...), false
	}

	return append(S(nil), s[:n]...), true
}

// Map applies fn to every element of s, returning a new slice.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	if s == nil {
		return nil
	}

	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}

	return out
}
