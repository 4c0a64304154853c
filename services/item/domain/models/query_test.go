package models

import (
	"math"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func TestItemFilter_Matches(t *testing.T) {
	item := NewItem(3, "item3", 50, time.Now())

	tests := []struct {
		name   string
		filter ItemFilter
		want   bool
	}{
		{"empty filter matches", ItemFilter{}, true},
		{"name substring", ItemFilter{Name: ptr("tem")}, true},
		{"name mismatch", ItemFilter{Name: ptr("other")}, false},
		{"name is case sensitive", ItemFilter{Name: ptr("ITEM")}, false},
		{"minPrice below", ItemFilter{MinPrice: ptr(40)}, true},
		{"minPrice inclusive", ItemFilter{MinPrice: ptr(50)}, true},
		{"minPrice above", ItemFilter{MinPrice: ptr(60)}, false},
		{"maxPrice inclusive", ItemFilter{MaxPrice: ptr(50)}, true},
		{"maxPrice below", ItemFilter{MaxPrice: ptr(49)}, false},
		{"all predicates", ItemFilter{Name: ptr("item"), MinPrice: ptr(10), MaxPrice: ptr(100)}, true},
		{"one predicate fails", ItemFilter{Name: ptr("item"), MinPrice: ptr(10), MaxPrice: ptr(20)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(item); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{"default", DefaultPageRequest(), 0},
		{"second page", Page{Page: 1, Size: 10}, 10},
		{"fifth page", Page{Page: 5, Size: 10}, 50},
		{"overflow saturates", Page{Page: math.MaxInt, Size: 2}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.Offset(); got != tt.want {
				t.Fatalf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}
