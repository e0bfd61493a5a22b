package services

import (
	"github.com/ghuser/freightbox/pkg/app"
	"github.com/ghuser/freightbox/pkg/events"
	"github.com/ghuser/freightbox/pkg/telemetry"
	"github.com/ghuser/freightbox/services/container/domain/repositories"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Container *ContainerService
}

// New wires all container application services. serials must be the single
// process-wide allocator; building a second one would reissue serials.
func New(a *app.Application, serials repositories.SerialAllocator) (*Services, error) {
	var bus events.Publisher
	if a.EventBus != nil {
		bus = a.EventBus
	}
	meter := a.Meter
	if meter == nil {
		meter = telemetry.Meter()
	}

	svc, err := NewContainerService(serials, bus, a.Logger, telemetry.Tracer(), meter)
	if err != nil {
		return nil, err
	}
	return &Services{Container: svc}, nil
}
