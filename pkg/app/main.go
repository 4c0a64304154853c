package app

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/itemregistry/pkg/config"
	"github.com/ghuser/itemregistry/pkg/events"
	"github.com/ghuser/itemregistry/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "publish failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Meter    metric.Meter
}
