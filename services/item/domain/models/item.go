package models

import "time"

// Item is the core aggregate for this bounded context.
// ID and CreatedAt are fixed at creation; only Apply changes the other fields.
type Item struct {
	ID        int64
	Name      ItemName
	Price     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem constructs an Item with the given registry-issued id.
// CreatedAt and UpdatedAt are both set to now.
func NewItem(id int64, name ItemName, price int, now time.Time) *Item {
	return &Item{
		ID:        id,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ItemUpdate is the full set of mutable Item fields. Update replaces all of them.
type ItemUpdate struct {
	Name  ItemName
	Price int
}

// Apply returns a copy of the item with name and price replaced and UpdatedAt set to now.
// UpdatedAt never moves before CreatedAt.
func (i Item) Apply(u ItemUpdate, now time.Time) Item {
	i.Name = u.Name
	i.Price = u.Price
	if now.Before(i.CreatedAt) {
		now = i.CreatedAt
	}
	i.UpdatedAt = now
	return i
}
