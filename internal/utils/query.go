// Package utils provides small, generic helpers for parsing request input.
// They carry no domain or business logic.
package utils

import "strconv"

// AtoiDefault converts s with strconv.Atoi, returning def when s is empty or
// not an integer.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// PositiveIntCapped parses a count-like query value such as a result limit.
// Missing, malformed or non-positive input yields def; values above max are
// clamped to max. A non-positive max disables the cap.
//
//	utils.PositiveIntCapped("5", 3, 20)  // 5
//	utils.PositiveIntCapped("0", 3, 20)  // 3
//	utils.PositiveIntCapped("99", 3, 20) // 20
func PositiveIntCapped(s string, def, max int) int {
	n := AtoiDefault(s, def)
	if n < 1 {
		n = def
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}
