package models

import (
	"math"
	"strings"
)

// Paging defaults applied when the caller omits page or size.
const (
	DefaultPage = 0
	DefaultSize = 10
)

// ItemFilter holds the optional list predicates. A nil field matches every item.
type ItemFilter struct {
	Name     *string // substring of the item name
	MinPrice *int    // inclusive lower bound
	MaxPrice *int    // inclusive upper bound
}

// Matches reports whether item satisfies every present predicate.
func (f ItemFilter) Matches(item *Item) bool {
	if f.Name != nil && !strings.Contains(item.Name.String(), *f.Name) {
		return false
	}
	if f.MinPrice != nil && item.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	return true
}

// Page selects a window of matching items by offset/limit.
type Page struct {
	Page int // zero-based page number
	Size int // items per page, > 0
}

// DefaultPageRequest returns page 0 of size 10.
func DefaultPageRequest() Page {
	return Page{Page: DefaultPage, Size: DefaultSize}
}

// Offset returns Page*Size, saturating at math.MaxInt instead of overflowing.
func (p Page) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}
