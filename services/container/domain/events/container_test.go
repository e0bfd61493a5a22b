package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/freightbox/services/container/domain/events"
)

func TestContainerCreatedEvent_JSONRoundTrip(t *testing.T) {
	celsius := 3.0
	original := events.ContainerCreatedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		Identifier: "ELOR0013375",
		OwnerCode:  "ELO",
		Category:   "R",
		Serial:     1337,
		Variant:    "refrigerated",
		LengthFt:   200,
		VolumeFt3:  13500,
		Contents:   []string{"drugs"},
		Celsius:    &celsius,
		OccurredAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.ContainerCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.Identifier != original.Identifier {
		t.Errorf("Identifier: got %q, want %q", decoded.Identifier, original.Identifier)
	}
	if decoded.Celsius == nil || *decoded.Celsius != celsius {
		t.Errorf("Celsius: got %v, want %v", decoded.Celsius, celsius)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestContainerCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.NewContainerCreatedEvent()
	evt.Identifier = "CSQU3054383"

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "identifier", "owner_code", "category", "serial", "variant", "length_ft", "volume_ft3", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if _, ok := raw["celsius"]; ok {
		t.Errorf("celsius must be omitted for containers without temperature: %s", data)
	}
}

func TestNewEvents_StampMetadata(t *testing.T) {
	a, b := events.NewContainerCreatedEvent(), events.NewContainerCreatedEvent()
	if a.EventID == uuid.Nil || a.EventID == b.EventID {
		t.Fatal("expected unique non-zero event IDs")
	}
	if a.Version != 1 || a.OccurredAt.IsZero() {
		t.Fatalf("unexpected metadata: version=%d occurred_at=%v", a.Version, a.OccurredAt)
	}

	tc := events.NewTemperatureChangedEvent()
	if tc.EventID == uuid.Nil || tc.Version != 1 {
		t.Fatalf("unexpected temperature event metadata: %+v", tc)
	}
}

func TestTopics_Values(t *testing.T) {
	if events.TopicContainerCreated != "container.created" {
		t.Errorf("unexpected topic %q", events.TopicContainerCreated)
	}
	if events.TopicTemperatureChanged != "container.temperature_changed" {
		t.Errorf("unexpected topic %q", events.TopicTemperatureChanged)
	}
}
