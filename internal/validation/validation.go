// Package validation normalizes user input for add/update operations.
// Rejections are quiet: callers treat an invalid value as a no-op rather
// than an error surfaced to the user.
package validation

import "strings"

// Title trims a title/text value and reports whether it is usable.
// Whitespace-only input is rejected.
func Title(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// Description trims an optional description. Empty stays empty.
func Description(s string) string {
	return strings.TrimSpace(s)
}
