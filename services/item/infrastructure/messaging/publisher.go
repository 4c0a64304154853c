// Package messaging publishes and consumes item lifecycle events over the
// shared EventBus.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/itemregistry/pkg/events"
	domainevents "github.com/ghuser/itemregistry/services/item/domain/events"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

const eventVersion = 1

// Publisher turns item changes into domain events on the EventBus.
type Publisher struct {
	bus *events.EventBus
}

// NewPublisher returns a Publisher backed by bus.
func NewPublisher(bus *events.EventBus) *Publisher {
	return &Publisher{bus: bus}
}

// ItemCreated publishes an ItemCreatedEvent.
func (p *Publisher) ItemCreated(ctx context.Context, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Price:      item.Price,
		OccurredAt: item.CreatedAt,
	}
	return p.publish(ctx, domainevents.TopicItemCreated, event.EventID, event)
}

// ItemUpdated publishes an ItemUpdatedEvent.
func (p *Publisher) ItemUpdated(ctx context.Context, item *models.Item) error {
	event := domainevents.ItemUpdatedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Price:      item.Price,
		OccurredAt: item.UpdatedAt,
	}
	return p.publish(ctx, domainevents.TopicItemUpdated, event.EventID, event)
}

// ItemDeleted publishes an ItemDeletedEvent.
func (p *Publisher) ItemDeleted(ctx context.Context, id int64, at time.Time) error {
	event := domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		ItemID:     id,
		OccurredAt: at,
	}
	return p.publish(ctx, domainevents.TopicItemDeleted, event.EventID, event)
}

func (p *Publisher) publish(ctx context.Context, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", strconv.Itoa(eventVersion))
	return p.bus.Publish(ctx, topic, msg)
}
