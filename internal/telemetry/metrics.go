package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Faultbox/terrain-flight/internal/flight"
)

const instrumentationName = "github.com/Faultbox/terrain-flight/internal/telemetry"

// Metrics counts flight commands through OpenTelemetry. It uses the global
// meter provider, which is a no-op unless the host process installs one.
type Metrics struct {
	commands metric.Int64Counter
	hits     metric.Int64Counter
	reverts  metric.Int64Counter
	clients  metric.Int64ObservableGauge
}

// NewMetrics registers the flight instruments on the global meter. hub may be
// nil when the websocket feed is disabled.
func NewMetrics(hub *Hub) (*Metrics, error) {
	return NewMetricsWithMeter(otel.Meter(instrumentationName), hub)
}

// NewMetricsWithMeter registers the instruments on m.
func NewMetricsWithMeter(m metric.Meter, hub *Hub) (*Metrics, error) {
	var (
		ms  Metrics
		err error
	)

	ms.commands, err = m.Int64Counter(
		"flight.commands",
		metric.WithDescription("Flight commands applied"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commands counter: %w", err)
	}

	ms.hits, err = m.Int64Counter(
		"flight.collision.hits",
		metric.WithDescription("Terrain triangles that shortened a move"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}

	ms.reverts, err = m.Int64Counter(
		"flight.envelope.reverts",
		metric.WithDescription("Moves rejected at the envelope edge"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reverts counter: %w", err)
	}

	ms.clients, err = m.Int64ObservableGauge(
		"telemetry.clients",
		metric.WithDescription("Connected websocket clients"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating clients gauge: %w", err)
	}

	if hub != nil {
		_, err = m.RegisterCallback(
			func(ctx context.Context, o metric.Observer) error {
				o.ObserveInt64(ms.clients, int64(hub.Clients()))
				return nil
			},
			ms.clients,
		)
		if err != nil {
			return nil, fmt.Errorf("registering clients callback: %w", err)
		}
	}

	return &ms, nil
}

// Record counts one applied command.
func (ms *Metrics) Record(ctx context.Context, res flight.Result) {
	key := flight.KeyNone.String()
	if res.Command != nil {
		key = res.Command.Key().String()
	}
	keyAttr := metric.WithAttributes(attribute.String("key", key))

	ms.commands.Add(ctx, 1, keyAttr)
	if res.Hits > 0 {
		ms.hits.Add(ctx, int64(res.Hits), keyAttr)
	}
	if res.Reverted {
		ms.reverts.Add(ctx, 1, keyAttr)
	}
}
