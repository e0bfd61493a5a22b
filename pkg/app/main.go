package app

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/freightbox/pkg/config"
	"github.com/ghuser/freightbox/pkg/events"
	"github.com/ghuser/freightbox/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Build it once in main and pass it to each service's New.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id and span_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "container created", "identifier", c.Identifier())
//	app.Logger.ErrorContext(ctx, "allocation failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus // nil disables event publishing
	Meter    metric.Meter
}
