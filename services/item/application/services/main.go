package services

import (
	"github.com/ghuser/itemregistry/pkg/app"
	"github.com/ghuser/itemregistry/services/item/infrastructure/messaging"
	"github.com/ghuser/itemregistry/services/item/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
// Each call owns a fresh, empty registry.
func New(a *app.Application) *Services {
	opts := []Option{WithLogger(a.Logger)}
	if a.EventBus != nil {
		opts = append(opts, WithPublisher(messaging.NewPublisher(a.EventBus)))
	}
	if a.Meter != nil {
		opts = append(opts, WithMeter(a.Meter))
	}
	return &Services{
		Item: NewItemService(memory.NewItemRepository(), opts...),
	}
}
