package appearance

import "strings"

// Tokens recognised by the formatter and layout resolver.
const (
	TokenThousandsSep = "thousands-sep"
	TokenColumns      = "columns"
	TokenColumnsN     = "columns-"
)

// Hint is the raw appearance attribute of a question. The zero value means no
// appearance was declared.
type Hint string

// Contains reports whether token occurs anywhere in the raw hint. Matching is
// case-sensitive.
func (h Hint) Contains(token string) bool {
	if h == "" || token == "" {
		return false
	}
	return strings.Contains(string(h), token)
}

// Normalized returns the hint trimmed and lowercased.
func (h Hint) Normalized() Hint {
	return Hint(strings.ToLower(strings.TrimSpace(string(h))))
}

// String returns the raw hint.
func (h Hint) String() string {
	return string(h)
}
