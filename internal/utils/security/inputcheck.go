// Package security validates externally supplied strings before they
// reach lookups or log output.
package security

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Limits bounds a single validated string.
type Limits struct {
	MaxLen int
}

// DefaultLimits covers path-like command arguments.
func DefaultLimits() Limits {
	return Limits{MaxLen: 4096}
}

// FileNameLimits covers 8.3-style file name arguments: eight name
// bytes, a dot, and three extension bytes.
func FileNameLimits() Limits {
	return Limits{MaxLen: 12}
}

// ValidateString rejects values that are empty, over-long, not valid
// UTF-8, or that contain NUL or other control characters. The field
// name is only used in the error message.
func ValidateString(field, value string, lim Limits) error {
	if value == "" {
		return fmt.Errorf("%s: empty value", field)
	}
	if lim.MaxLen > 0 && len(value) > lim.MaxLen {
		return fmt.Errorf("%s: longer than %d bytes", field, lim.MaxLen)
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%s: invalid UTF-8", field)
	}
	for _, r := range value {
		if r == 0 {
			return fmt.Errorf("%s: NUL byte", field)
		}
		if unicode.IsControl(r) {
			return fmt.Errorf("%s: control character %q", field, r)
		}
	}
	return nil
}
