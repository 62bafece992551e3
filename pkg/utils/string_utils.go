package utils

import "strings"

// NewNullString is a helper for optional string inputs, returning nil if the
// trimmed string is empty.
func NewNullString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
