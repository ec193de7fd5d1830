// utils.go - Utility functions
package main

import "unicode/utf8"

// truncateToRunes truncates s to at most maxRunes runes, appending "…" if truncated.
// Avoids slicing UTF-8 strings by byte index (which can cut mid-rune).
func truncateToRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + "…"
		}
		n++
	}
	return s + "…"
}
