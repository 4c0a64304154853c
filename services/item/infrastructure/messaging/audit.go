package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemregistry/pkg/events"
	"github.com/ghuser/itemregistry/pkg/logger"
	domainevents "github.com/ghuser/itemregistry/services/item/domain/events"
)

// auditRecord holds the fields common to every item event.
type auditRecord struct {
	EventID string `json:"event_id"`
	ItemID  int64  `json:"item_id"`
	Name    string `json:"name,omitempty"`
	Price   *int   `json:"price,omitempty"`
}

// RegisterAuditSubscribers logs every item lifecycle event. Subscriptions end
// when ctx is cancelled or the bus is closed.
func RegisterAuditSubscribers(ctx context.Context, bus *events.EventBus, log logger.Logger) error {
	for _, topic := range domainevents.Topics {
		errCh, err := bus.Subscribe(ctx, topic, auditHandler(topic, log))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		// Drain subscriber errors so the channel never blocks.
		go func() {
			for err := range errCh {
				log.ErrorContext(ctx, "audit subscriber error", "topic", topic, "error", err)
			}
		}()
	}
	return nil
}

func auditHandler(topic string, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var rec auditRecord
		if err := json.Unmarshal(msg.Payload, &rec); err != nil {
			// Malformed payloads never succeed on retry.
			log.ErrorContext(ctx, "audit: undecodable event", "topic", topic, "message_id", msg.UUID, "error", err)
			return nil
		}

		args := []any{
			"topic", topic,
			"event_id", rec.EventID,
			"event_version", msg.Metadata.Get("event_version"),
			"item_id", rec.ItemID,
		}
		if rec.Name != "" {
			args = append(args, "name", rec.Name)
		}
		if rec.Price != nil {
			args = append(args, "price", *rec.Price)
		}
		log.InfoContext(ctx, "item event", args...)
		return nil
	}
}
