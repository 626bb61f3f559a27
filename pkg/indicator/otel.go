package indicator

import (
	"context"
	"fmt"

	"github.com/OCAP2/arlayout/internal/layout"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/OCAP2/arlayout/pkg/indicator"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instruments struct {
	frames        metric.Int64Counter
	skipped       metric.Int64Counter
	frameDuration metric.Float64Histogram
	assignments   metric.Int64Counter
	auxFailures   metric.Int64Counter
	registered    metric.Int64ObservableGauge
	pendingAux    metric.Int64ObservableGauge
	zoneAttrs     map[layout.Zone]metric.AddOption
}

// initMetrics creates the engine's instruments on the global OTel meter
// (no-op if not configured).
func (e *Engine) initMetrics() error {
	m := meter()
	var err error

	e.metrics.frames, err = m.Int64Counter(
		"indicator.frames",
		metric.WithDescription("Total frames laid out"),
	)
	if err != nil {
		return fmt.Errorf("creating frames counter: %w", err)
	}

	e.metrics.skipped, err = m.Int64Counter(
		"indicator.frames.skipped",
		metric.WithDescription("Frames skipped because the camera was not ready"),
	)
	if err != nil {
		return fmt.Errorf("creating skipped counter: %w", err)
	}

	e.metrics.frameDuration, err = m.Float64Histogram(
		"indicator.frame.duration",
		metric.WithDescription("Time spent laying out one frame"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("creating frame duration histogram: %w", err)
	}

	e.metrics.assignments, err = m.Int64Counter(
		"indicator.zone.assignments",
		metric.WithDescription("Markers assigned to each zone"),
	)
	if err != nil {
		return fmt.Errorf("creating zone assignment counter: %w", err)
	}

	e.metrics.auxFailures, err = m.Int64Counter(
		"indicator.auxiliary.failures",
		metric.WithDescription("Auxiliary objects the factory failed to create"),
	)
	if err != nil {
		return fmt.Errorf("creating auxiliary failure counter: %w", err)
	}

	e.metrics.registered, err = m.Int64ObservableGauge(
		"indicator.markers.registered",
		metric.WithDescription("Current number of registered markers"),
	)
	if err != nil {
		return fmt.Errorf("creating registered gauge: %w", err)
	}

	e.metrics.pendingAux, err = m.Int64ObservableGauge(
		"indicator.auxiliary.pending",
		metric.WithDescription("Auxiliary objects waiting for a geolocation fix"),
	)
	if err != nil {
		return fmt.Errorf("creating pending gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(e.metrics.registered, int64(e.markers.Len()))
			o.ObserveInt64(e.metrics.pendingAux, int64(e.pending.Len()))
			return nil
		},
		e.metrics.registered,
		e.metrics.pendingAux,
	)
	if err != nil {
		return fmt.Errorf("registering gauge callback: %w", err)
	}

	e.metrics.zoneAttrs = make(map[layout.Zone]metric.AddOption)
	for _, z := range []layout.Zone{layout.ZoneTop, layout.ZoneRight, layout.ZoneBottom, layout.ZoneLeft, layout.ZoneCorner, layout.ZoneInView} {
		e.metrics.zoneAttrs[z] = metric.WithAttributes(attribute.String("zone", z.String()))
	}
	return nil
}
