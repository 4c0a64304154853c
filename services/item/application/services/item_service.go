package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ghuser/itemregistry/pkg/logger"
	"github.com/ghuser/itemregistry/services/item/domain/models"
	"github.com/ghuser/itemregistry/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemregistry/services/item/domain/services"
)

// EventPublisher announces item lifecycle changes. Implementations must be
// safe for concurrent use.
type EventPublisher interface {
	ItemCreated(ctx context.Context, item *models.Item) error
	ItemUpdated(ctx context.Context, item *models.Item) error
	ItemDeleted(ctx context.Context, id int64, at time.Time) error
}

// Fixture is a name/price pair seeded at startup.
type Fixture struct {
	Name  string
	Price int
}

// DefaultFixtures are the items present in a freshly started registry.
var DefaultFixtures = []Fixture{
	{Name: "item1", Price: 100},
	{Name: "item2", Price: 200},
}

// ItemService orchestrates the item lifecycle over the registry.
// The registry is the source of truth: event publishing is best-effort and a
// publish failure is logged, never returned.
type ItemService struct {
	repo      repositories.ItemRepository
	publisher EventPublisher
	log       logger.Logger
	now       func() time.Time
	metrics   itemMetrics
}

// Option customizes an ItemService.
type Option func(*ItemService)

// WithClock replaces time.Now for timestamping.
func WithClock(now func() time.Time) Option {
	return func(s *ItemService) { s.now = now }
}

// WithPublisher sets the lifecycle event publisher.
func WithPublisher(p EventPublisher) Option {
	return func(s *ItemService) { s.publisher = p }
}

// WithLogger sets the logger used for best-effort failures.
func WithLogger(log logger.Logger) Option {
	return func(s *ItemService) { s.log = log }
}

// WithMeter records item counters on meter.
func WithMeter(meter metric.Meter) Option {
	return func(s *ItemService) { s.metrics = newItemMetrics(meter) }
}

// NewItemService returns an ItemService over repo.
func NewItemService(repo repositories.ItemRepository, opts ...Option) *ItemService {
	s := &ItemService{
		repo:    repo,
		log:     logger.Nop(),
		now:     time.Now,
		metrics: newItemMetrics(noop.NewMeterProvider().Meter("")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the requested page of items matching filter plus the total
// number of matches. Items keep insertion order.
func (s *ItemService) List(ctx context.Context, filter models.ItemFilter, page models.Page) ([]*models.Item, int, error) {
	items, total, err := s.repo.Find(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// GetByID returns the item or an error matching ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// Create validates the input, then allocates the next id and appends the item.
// On validation failure no id is consumed and the *ValidationError lists every
// violated rule.
func (s *ItemService) Create(ctx context.Context, name string, price int) (*models.Item, error) {
	itemName := models.ItemName(name)
	if err := domainsvcs.ValidateItemForCreation(itemName, price); err != nil {
		s.metrics.validationFailures.Add(ctx, 1)
		return nil, fmt.Errorf("create item: %w", err)
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate item id: %w", err)
	}
	item := models.NewItem(id, itemName, price, s.now())
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	s.metrics.created.Add(ctx, 1)

	if s.publisher != nil {
		if err := s.publisher.ItemCreated(ctx, item); err != nil {
			s.log.WarnContext(ctx, "failed to publish item created", "item_id", item.ID, "error", err)
		}
	}
	return item, nil
}

// Update replaces name and price of an existing item in place and stamps
// UpdatedAt. The input is not re-validated.
func (s *ItemService) Update(ctx context.Context, id int64, name string, price int) (*models.Item, error) {
	item, err := s.repo.Update(ctx, id, models.ItemUpdate{Name: models.ItemName(name), Price: price}, s.now())
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	s.metrics.updated.Add(ctx, 1)

	if s.publisher != nil {
		if err := s.publisher.ItemUpdated(ctx, item); err != nil {
			s.log.WarnContext(ctx, "failed to publish item updated", "item_id", item.ID, "error", err)
		}
	}
	return item, nil
}

// Delete removes the item if present. Deleting an absent id is not an error.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if !removed {
		return nil
	}
	s.metrics.deleted.Add(ctx, 1)

	if s.publisher != nil {
		if err := s.publisher.ItemDeleted(ctx, id, s.now()); err != nil {
			s.log.WarnContext(ctx, "failed to publish item deleted", "item_id", id, "error", err)
		}
	}
	return nil
}

// SeedFixtures creates each fixture through Create, so seeded items take the
// first ids in order.
func (s *ItemService) SeedFixtures(ctx context.Context, fixtures []Fixture) error {
	for _, f := range fixtures {
		if _, err := s.Create(ctx, f.Name, f.Price); err != nil {
			return fmt.Errorf("seed %q: %w", f.Name, err)
		}
	}
	return nil
}

// Ping reports registry health.
func (s *ItemService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
