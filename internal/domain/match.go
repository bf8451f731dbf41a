package domain

import "strings"

// NormalizeKey lowercases and trims a budget-hierarchy key (major head, scheme, workcode)
// so that reference data typed with different casing or stray spaces still matches.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameKey reports whether a and b name the same budget-hierarchy key.
func SameKey(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}
