package repositories

import (
	"context"
	"time"

	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// ItemRepository is the storage interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Implementations hand out copies: mutating a returned *models.Item never
// changes stored state.
type ItemRepository interface {
	// NextID issues the next item identifier. Identifiers are strictly
	// increasing and never reused, even after deletion. Issuing an id and
	// saving the item are separate steps, so under concurrent creates the
	// insertion order seen by Find may differ from id order.
	NextID(ctx context.Context) (int64, error)

	// Save appends a new item at the end of the collection.
	Save(ctx context.Context, item *models.Item) error

	// GetByID returns the item with the given id or ErrItemNotFound.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// Find returns the page of items matching filter, in insertion order,
	// plus the total number of matches ignoring pagination.
	Find(ctx context.Context, filter models.ItemFilter, page models.Page) ([]*models.Item, int, error)

	// Update applies u to the item in place, keeping its position.
	// Returns ErrItemNotFound if no item has the id.
	Update(ctx context.Context, id int64, u models.ItemUpdate, now time.Time) (*models.Item, error)

	// Delete removes every item with the id and reports whether anything was removed.
	// Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// Ping reports whether the repository can serve requests.
	Ping(ctx context.Context) error
}
