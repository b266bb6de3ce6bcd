// Package validation holds the field-by-field form validators used at
// the API boundary. Each validator collects every violation into an
// ErrorMap instead of stopping at the first one; an empty map means the
// input is acceptable.
package validation

// ErrorMap maps a field name to a human-readable message.
type ErrorMap map[string]string

// Valid reports whether no rule was violated.
func (e ErrorMap) Valid() bool { return len(e) == 0 }
