package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/freightbox/pkg/events"
	"github.com/ghuser/freightbox/pkg/logger"
	pkgvalidator "github.com/ghuser/freightbox/pkg/validator"
	containerdomain "github.com/ghuser/freightbox/services/container/domain"
	containerevents "github.com/ghuser/freightbox/services/container/domain/events"
	"github.com/ghuser/freightbox/services/container/domain/models"
	"github.com/ghuser/freightbox/services/container/domain/repositories"
	domainsvcs "github.com/ghuser/freightbox/services/container/domain/services"
)

// lowSerialWatermark triggers a warning when few serials remain.
const lowSerialWatermark = 1000

// CreateRequest holds everything needed to build one container.
// Celsius is required for refrigerated kinds and forbidden for standard ones.
type CreateRequest struct {
	OwnerCode string            `json:"owner_code" validate:"required,len=3,alpha,uppercase"`
	LengthFt  float64           `json:"length_ft"  validate:"gt=0"`
	Variant   models.VariantTag `json:"variant"    validate:"required,oneof=standard refrigerated heated-refrigerated"`
	Celsius   *float64          `json:"celsius,omitempty"`
	Items     []string          `json:"items,omitempty"`
}

// Options are the variant-specific fields of CreateEmpty and CreateWithItems.
type Options struct {
	Celsius *float64
}

// ContainerService is the only path by which containers are created. It
// validates the request, draws a serial, encodes the identifier and
// publishes a container.created event.
//
// ContainerService is safe for concurrent use; the returned containers are not.
type ContainerService struct {
	serials repositories.SerialAllocator
	bus     events.Publisher
	log     logger.Logger
	tracer  trace.Tracer
	metrics *containerMetrics
}

// NewContainerService returns a ContainerService. bus may be nil to disable
// event publishing.
func NewContainerService(
	serials repositories.SerialAllocator,
	bus events.Publisher,
	log logger.Logger,
	tracer trace.Tracer,
	meter metric.Meter,
) (*ContainerService, error) {
	metrics, err := newContainerMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("container metrics: %w", err)
	}
	return &ContainerService{
		serials: serials,
		bus:     bus,
		log:     log,
		tracer:  tracer,
		metrics: metrics,
	}, nil
}

// CreateEmpty builds a container with no contents.
func (s *ContainerService) CreateEmpty(ctx context.Context, owner string, lengthFt float64, variant models.VariantTag, opts Options) (*models.Container, error) {
	return s.Create(ctx, CreateRequest{
		OwnerCode: owner,
		LengthFt:  lengthFt,
		Variant:   variant,
		Celsius:   opts.Celsius,
	})
}

// CreateWithItems builds a container holding a copy of items.
func (s *ContainerService) CreateWithItems(ctx context.Context, owner string, lengthFt float64, items []string, variant models.VariantTag, opts Options) (*models.Container, error) {
	return s.Create(ctx, CreateRequest{
		OwnerCode: owner,
		LengthFt:  lengthFt,
		Variant:   variant,
		Celsius:   opts.Celsius,
		Items:     items,
	})
}

// Create validates req, allocates a serial and returns the new container.
// Every validation runs before the serial is drawn, so rejected requests
// never consume one.
func (s *ContainerService) Create(ctx context.Context, req CreateRequest) (*models.Container, error) {
	ctx, span := s.tracer.Start(ctx, "ContainerService.Create",
		trace.WithAttributes(
			attribute.String("container.owner_code", req.OwnerCode),
			attribute.String("container.variant", req.Variant.String()),
		))
	defer span.End()

	c, err := s.create(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.recordRejection(ctx, req.Variant, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("container.identifier", c.Identifier()))
	return c, nil
}

func (s *ContainerService) create(ctx context.Context, req CreateRequest) (*models.Container, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	owner, err := domainsvcs.ValidateOwnerCode(req.OwnerCode)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateLength(req.LengthFt); err != nil {
		return nil, err
	}
	variant, err := models.LookupVariant(req.Variant)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateTemperatureOption(variant.Tag, req.Celsius); err != nil {
		return nil, err
	}

	serial, err := s.serials.Allocate()
	if err != nil {
		if errors.Is(err, containerdomain.ErrSerialSpaceExhausted) {
			s.log.ErrorContext(ctx, "serial space exhausted", "error", err)
		}
		return nil, fmt.Errorf("allocate serial: %w", err)
	}
	s.metrics.serials.Add(ctx, 1)
	s.warnIfLow(ctx)

	c, err := models.NewContainer(models.ContainerParams{
		Owner:    owner,
		Serial:   serial,
		Variant:  variant.Tag,
		LengthFt: req.LengthFt,
		Contents: req.Items,
		Celsius:  req.Celsius,
	})
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}

	if err := domainsvcs.ValidateContainerForCreation(c); err != nil {
		return nil, fmt.Errorf("validate container: %w", err)
	}

	s.metrics.created.Add(ctx, 1, metric.WithAttributes(attribute.String("variant", c.Variant().String())))
	s.publishCreated(ctx, c)
	s.log.InfoContext(ctx, "container created",
		"identifier", c.Identifier(),
		"variant", c.Variant(),
		"volume_ft3", c.VolumeFt3(),
	)
	return c, nil
}

// validateRequest runs the struct tags and maps the first offending field to
// its domain sentinel, owner code first.
func validateRequest(req *CreateRequest) error {
	err := pkgvalidator.Validate(req)
	if err == nil {
		return nil
	}
	fields := pkgvalidator.FormatValidationErrors(err)
	summary := pkgvalidator.Summary(err)
	switch {
	case fields["owner_code"] != "":
		return fmt.Errorf("%w: %s", containerdomain.ErrInvalidOwnerCode, summary)
	case fields["variant"] != "":
		return fmt.Errorf("%w: %s", containerdomain.ErrUnknownVariant, summary)
	case fields["length_ft"] != "":
		return fmt.Errorf("%w: %s", containerdomain.ErrInvalidLength, summary)
	default:
		return fmt.Errorf("%w: %s", containerdomain.ErrInvalidRequest, summary)
	}
}

// SetCelsius changes the temperature of c. On error c is left unchanged.
// Callers sharing c across goroutines must serialize calls themselves.
func (s *ContainerService) SetCelsius(ctx context.Context, c *models.Container, celsius float64) error {
	ctx, span := s.tracer.Start(ctx, "ContainerService.SetCelsius",
		trace.WithAttributes(attribute.String("container.identifier", c.Identifier())))
	defer span.End()

	previous, _ := c.Celsius()
	if err := c.SetCelsius(celsius); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.recordRejection(ctx, c.Variant(), err)
		s.log.WarnContext(ctx, "temperature rejected",
			"identifier", c.Identifier(),
			"celsius", celsius,
			"error", err,
		)
		return err
	}

	evt := containerevents.NewTemperatureChangedEvent()
	evt.Identifier = c.Identifier()
	evt.PreviousCelsius = previous
	evt.Celsius = celsius
	s.publish(ctx, containerevents.TopicTemperatureChanged, evt.EventID.String(), evt.Version, evt)
	return nil
}

// SetFahrenheit converts fahrenheit to Celsius and applies it via SetCelsius.
func (s *ContainerService) SetFahrenheit(ctx context.Context, c *models.Container, fahrenheit float64) error {
	return s.SetCelsius(ctx, c, models.FahrenheitToCelsius(fahrenheit))
}

func (s *ContainerService) publishCreated(ctx context.Context, c *models.Container) {
	evt := containerevents.NewContainerCreatedEvent()
	evt.Identifier = c.Identifier()
	evt.OwnerCode = c.OwnerCode().String()
	evt.Category = c.Category().String()
	evt.Serial = c.Serial().Int()
	evt.Variant = c.Variant().String()
	evt.LengthFt = c.LengthFt()
	evt.VolumeFt3 = c.VolumeFt3()
	evt.Contents = c.Contents()
	if celsius, ok := c.Celsius(); ok {
		evt.Celsius = &celsius
	}
	s.publish(ctx, containerevents.TopicContainerCreated, evt.EventID.String(), evt.Version, evt)
}

// publish is best-effort: the container already exists, so a failed publish
// is logged and never surfaces to the caller.
func (s *ContainerService) publish(ctx context.Context, topic, eventID string, version int, evt any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal event failed", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID)
	msg.Metadata.Set("event_version", strconv.Itoa(version))
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.WarnContext(ctx, "publish event failed", "topic", topic, "error", err)
	}
}

func (s *ContainerService) recordRejection(ctx context.Context, variant models.VariantTag, err error) {
	var te *containerdomain.TemperatureError
	if !errors.As(err, &te) {
		return
	}
	s.metrics.rejections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("variant", variant.String()),
		attribute.String("violation", string(te.Violation)),
	))
}

func (s *ContainerService) warnIfLow(ctx context.Context) {
	r, ok := s.serials.(interface{ Remaining() int })
	if !ok {
		return
	}
	if left := r.Remaining(); left < lowSerialWatermark {
		s.log.WarnContext(ctx, "serial space nearly exhausted", "remaining", left)
	}
}
