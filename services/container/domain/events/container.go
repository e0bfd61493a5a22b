package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the container service.
const (
	TopicContainerCreated     = "container.created"
	TopicTemperatureChanged   = "container.temperature_changed"
	containerEventVersion     = 1
	temperatureChangedVersion = 1
)

// ContainerCreatedEvent is published after a container has been fully built.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicContainerCreated).
type ContainerCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	Identifier string    `json:"identifier"`
	OwnerCode  string    `json:"owner_code"`
	Category   string    `json:"category"`
	Serial     int       `json:"serial"`
	Variant    string    `json:"variant"`
	LengthFt   float64   `json:"length_ft"`
	VolumeFt3  float64   `json:"volume_ft3"`
	Contents   []string  `json:"contents"`
	Celsius    *float64  `json:"celsius,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewContainerCreatedEvent stamps a fresh event ID, schema version and time.
func NewContainerCreatedEvent() ContainerCreatedEvent {
	return ContainerCreatedEvent{
		EventID:    uuid.New(),
		Version:    containerEventVersion,
		OccurredAt: time.Now().UTC(),
	}
}

// TemperatureChangedEvent is published after a successful temperature update.
type TemperatureChangedEvent struct {
	EventID         uuid.UUID `json:"event_id"`
	Version         int       `json:"version"`
	Identifier      string    `json:"identifier"`
	PreviousCelsius float64   `json:"previous_celsius"`
	Celsius         float64   `json:"celsius"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewTemperatureChangedEvent stamps a fresh event ID, schema version and time.
func NewTemperatureChangedEvent() TemperatureChangedEvent {
	return TemperatureChangedEvent{
		EventID:    uuid.New(),
		Version:    temperatureChangedVersion,
		OccurredAt: time.Now().UTC(),
	}
}
