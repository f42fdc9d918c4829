// Package utils provides common utility functions.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// Preview flattens whitespace and truncates the result to maxWidth terminal
// columns, so wide (CJK) runes count double.
func (s *StringHelper) Preview(str string, maxWidth int) string {
	return runewidth.Truncate(s.NormalizeWhitespace(str), maxWidth, "...")
}

// CountTokens returns the number of segments produced by splitting on a
// single space. Empty text counts as one segment.
func (s *StringHelper) CountTokens(str string) int {
	return strings.Count(str, " ") + 1
}
