package models

import (
	"strings"
	"unicode/utf8"
)

// ItemName is a value object representing an item's display name.
// Length is measured in runes; MaxItemNameLength is the single authoritative bound.
type ItemName string

// MaxItemNameLength is the maximum number of characters in an item name.
const MaxItemNameLength = 10

// IsBlank reports whether the name is empty or whitespace-only.
func (n ItemName) IsBlank() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Length returns the number of characters (runes) in the name.
func (n ItemName) Length() int {
	return utf8.RuneCountInString(string(n))
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
