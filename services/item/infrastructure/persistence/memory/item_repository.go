// Package memory implements the item repository as a process-lifetime,
// insertion-ordered collection.
package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository in memory.
//
// One RWMutex serializes every collection mutation against reads. The id
// counter is independent and lock-free, so concurrent creates never observe
// the same id.
type ItemRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	lastID atomic.Int64
}

// NewItemRepository returns an empty repository whose first issued id is 1.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// NextID issues the next identifier (fetch-and-add).
func (r *ItemRepository) NextID(_ context.Context) (int64, error) {
	return r.lastID.Add(1), nil
}

// Save appends a copy of item to the end of the collection.
func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	if item == nil {
		return fmt.Errorf("save item: nil item")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(item.ID) >= 0 {
		return fmt.Errorf("save item %d: duplicate id", item.ID)
	}
	r.items = append(r.items, *item)
	return nil
}

// GetByID returns a copy of the item with the given id or ErrItemNotFound.
func (r *ItemRepository) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, itemdomain.ErrItemNotFound
	}
	item := r.items[i]
	return &item, nil
}

// Find scans the collection in insertion order, keeps matches, then skips
// page.Offset() of them and returns at most page.Size. The second return value
// is the number of matches before paging.
func (r *ItemRepository) Find(_ context.Context, filter models.ItemFilter, page models.Page) ([]*models.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offset := page.Offset()
	out := make([]*models.Item, 0, max(0, min(page.Size, len(r.items))))
	total := 0
	for i := range r.items {
		if !filter.Matches(&r.items[i]) {
			continue
		}
		if total >= offset && len(out) < page.Size {
			item := r.items[i]
			out = append(out, &item)
		}
		total++
	}
	return out, total, nil
}

// Update replaces name and price of the item in place and stamps UpdatedAt.
func (r *ItemRepository) Update(_ context.Context, id int64, u models.ItemUpdate, now time.Time) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, itemdomain.ErrItemNotFound
	}
	r.items[i] = r.items[i].Apply(u, now)
	item := r.items[i]
	return &item, nil
}

// Delete removes every item with the id, preserving the order of the rest.
func (r *ItemRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, item := range r.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(r.items)
	clear(r.items[len(kept):])
	r.items = kept
	return removed, nil
}

// Ping always succeeds; the collection lives in process memory.
func (r *ItemRepository) Ping(_ context.Context) error {
	return nil
}

// Len returns the number of stored items.
func (r *ItemRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// indexOf must be called with r.mu held.
func (r *ItemRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
