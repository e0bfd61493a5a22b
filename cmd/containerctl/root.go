package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/spf13/cobra"

	"github.com/ghuser/freightbox/pkg/app"
	"github.com/ghuser/freightbox/pkg/config"
	"github.com/ghuser/freightbox/pkg/events"
	"github.com/ghuser/freightbox/pkg/logger"
	"github.com/ghuser/freightbox/pkg/telemetry"
	appsvcs "github.com/ghuser/freightbox/services/container/application/services"
	containerevents "github.com/ghuser/freightbox/services/container/domain/events"
	"github.com/ghuser/freightbox/services/container/infrastructure/serial"
)

// jsonOutput is bound to the persistent --json flag.
var jsonOutput bool

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "containerctl",
		Short: "Create and verify ISO 6346 freight container identifiers",
		Long: `containerctl builds standard, refrigerated and heated-refrigerated
containers, assigning each a process-unique serial and an ISO 6346 identifier,
and verifies existing identifiers.

Configuration is read from the environment (and .env): SERIAL_START,
LOG_LEVEL, ENVIRONMENT, OTEL_ENDPOINT, SENTRY_DSN and friends.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newVerifyCommand())
	return cmd
}

// env is the per-invocation wiring shared by commands that create containers.
type env struct {
	app      *app.Application
	services *appsvcs.Services
	closers  []func()
}

// newEnv loads config and builds the logger, telemetry, event bus and the
// single serial allocator for this process. Call close when done.
func newEnv(ctx context.Context, stderr io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(cfg, stderr)
	e := &env{}

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("setup otel: %w", err)
	}
	e.closers = append(e.closers, func() { _ = otelShutdown(context.Background()) })

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	e.closers = append(e.closers, telemetry.SentryFlush)

	bus := events.NewEventBus(cfg, log)
	e.closers = append(e.closers, func() { _ = bus.Close() })

	var opts []serial.Option
	if cfg.SerialResetEnabled {
		opts = append(opts, serial.WithResetEnabled())
	}
	allocator, err := serial.NewAllocator(cfg.SerialStart, opts...)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("serial allocator: %w", err)
	}

	e.app = &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: bus,
		Meter:    telemetry.Meter(),
	}

	if err := registerSubscribers(ctx, e.app); err != nil {
		e.close()
		return nil, err
	}

	e.services, err = appsvcs.New(e.app, allocator)
	if err != nil {
		e.close()
		return nil, err
	}
	return e, nil
}

// close runs the closers in reverse order.
func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// registerSubscribers logs every container event at debug level.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{containerevents.TopicContainerCreated, containerevents.TopicTemperatureChanged}
	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, logEvent(a.Logger, topic))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}
	a.Logger.Debug("event subscribers registered", "topics", topics)
	return nil
}

func logEvent(log logger.Logger, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var payload map[string]any
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		log.DebugContext(ctx, "event received", "topic", topic, "event_id", msg.UUID, "identifier", payload["identifier"])
		return nil
	}
}

func writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
