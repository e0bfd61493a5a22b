package services

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type containerMetrics struct {
	created    metric.Int64Counter
	serials    metric.Int64Counter
	rejections metric.Int64Counter
}

func newContainerMetrics(meter metric.Meter) (*containerMetrics, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	created, err := meter.Int64Counter("containers_created_total",
		metric.WithDescription("Containers successfully created, by variant."))
	if err != nil {
		return nil, err
	}
	serials, err := meter.Int64Counter("serials_allocated_total",
		metric.WithDescription("Serials drawn from the allocator."))
	if err != nil {
		return nil, err
	}
	rejections, err := meter.Int64Counter("temperature_rejections_total",
		metric.WithDescription("Temperatures rejected at creation or update, by variant and violation."))
	if err != nil {
		return nil, err
	}

	return &containerMetrics{created: created, serials: serials, rejections: rejections}, nil
}
