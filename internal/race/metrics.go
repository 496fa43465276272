package race

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics counts simulation activity. Instruments come from the global OTel
// provider, which is a no-op unless one is installed.
type Metrics struct {
	ticks   metric.Int64Counter
	events  metric.Int64Counter
	traffic metric.Int64ObservableGauge

	live atomic.Int64
}

func NewMetrics() (*Metrics, error) {
	return newMetrics(meter())
}

func newMetrics(m metric.Meter) (*Metrics, error) {
	mt := &Metrics{}
	var err error

	mt.ticks, err = m.Int64Counter(
		"race.ticks",
		metric.WithDescription("Simulation ticks that consumed time"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	mt.events, err = m.Int64Counter(
		"race.events",
		metric.WithDescription("Simulation events by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	mt.traffic, err = m.Int64ObservableGauge(
		"race.traffic.live",
		metric.WithDescription("Live traffic vehicles"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating traffic gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(mt.traffic, mt.live.Load())
			return nil
		},
		mt.traffic,
	)
	if err != nil {
		return nil, fmt.Errorf("registering traffic callback: %w", err)
	}

	return mt, nil
}

// Record adds one tick's worth of activity.
func (m *Metrics) Record(ctx context.Context, ticked bool, live int, events []Event) {
	if m == nil {
		return
	}
	m.live.Store(int64(live))
	if ticked {
		m.ticks.Add(ctx, 1)
	}
	for _, e := range events {
		m.events.Add(ctx, 1, metric.WithAttributes(attribute.String("type", e.Type.String())))
	}
}
