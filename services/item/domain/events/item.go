package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for item lifecycle events.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// Topics lists every item topic, for subscribers that want all of them.
var Topics = []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted}

// ItemCreatedEvent is published after a new Item is stored.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Price      int       `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after an Item's name and price are replaced.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Price      int       `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published only when a delete actually removed an Item.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
