package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterScope = "github.com/jsamuelsen11/greeter"

// Metric attribute keys.
var (
	AttrHTTPMethod   = attribute.Key("http.method")
	AttrHTTPRoute    = attribute.Key("http.route")
	AttrHTTPStatus   = attribute.Key("http.status_code")
	AttrGreetingKind = attribute.Key("greeting.kind")
	AttrResult       = attribute.Key("result")
)

// Metrics are the instruments the service records into.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	GreetingTotal         metric.Int64Counter
	CapitalizeRunes       metric.Int64Histogram
}

// NewMetrics registers the instruments on a meter from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterScope)
	var (
		m   Metrics
		err error
	)

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("http.server.request.duration: %w", err)
	}

	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("http.server.request.total: %w", err)
	}

	if m.GreetingTotal, err = meter.Int64Counter("greeting.total",
		metric.WithDescription("Greetings rendered or rejected"),
		metric.WithUnit("{greeting}"),
	); err != nil {
		return nil, fmt.Errorf("greeting.total: %w", err)
	}

	if m.CapitalizeRunes, err = meter.Int64Histogram("text.capitalize.runes",
		metric.WithDescription("Length of text passed to the capitalizer"),
		metric.WithUnit("{rune}"),
	); err != nil {
		return nil, fmt.Errorf("text.capitalize.runes: %w", err)
	}

	return &m, nil
}
