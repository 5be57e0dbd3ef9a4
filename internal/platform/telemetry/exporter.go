package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted in Options.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// target is a validated exporter choice. For OTLP, host is the collector's
// host:port and insecure is set unless the endpoint uses https.
type target struct {
	otlp     bool
	host     string
	insecure bool
}

func parseTarget(exporter, endpoint string) (target, error) {
	switch exporter {
	case ExporterStdout:
		return target{}, nil
	case ExporterOTLP:
	default:
		return target{}, fmt.Errorf("unsupported exporter %q", exporter)
	}

	if endpoint == "" {
		return target{}, errors.New("otlp exporter requires an endpoint")
	}
	t := target{otlp: true, host: endpoint, insecure: true}
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		t.host = u.Host
		t.insecure = u.Scheme != "https"
	}
	return t, nil
}

func (t target) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if !t.otlp {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (t target) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if !t.otlp {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
