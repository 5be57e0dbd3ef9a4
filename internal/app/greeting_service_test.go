package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/greeter/internal/domain"
	"github.com/jsamuelsen11/greeter/internal/domain/greeting"
	"github.com/jsamuelsen11/greeter/internal/platform/logging"
	"github.com/jsamuelsen11/greeter/internal/platform/telemetry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestMetrics returns Metrics backed by a manual reader so tests can
// collect what was recorded.
func newTestMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}
	return metrics, reader
}

// greetingCounts sums greeting.total data points by "kind/result".
func greetingCounts(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	counts := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "greeting.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("greeting.total data = %T, want metricdata.Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				kind, _ := dp.Attributes.Value(attribute.Key("greeting.kind"))
				result, _ := dp.Attributes.Value(attribute.Key("result"))
				counts[kind.AsString()+"/"+result.AsString()] += dp.Value
			}
		}
	}
	return counts
}

// --- NewGreetingService ---

func TestNewGreetingService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewGreetingService(0, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewGreetingService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Hello ---

func TestGreetingService_Hello(t *testing.T) {
	t.Parallel()

	t.Run("capitalizes the name", func(t *testing.T) {
		t.Parallel()
		svc := NewGreetingService(greeting.DefaultMaxNameLength, nil, discardLogger())

		got, err := svc.Hello(context.Background(), "ada lovelace")
		if err != nil {
			t.Fatalf("Hello() error = %v, want nil", err)
		}
		if got.Message != "Hello, Ada Lovelace" {
			t.Errorf("Message = %q, want %q", got.Message, "Hello, Ada Lovelace")
		}
	})

	t.Run("rejects names over the limit", func(t *testing.T) {
		t.Parallel()
		svc := NewGreetingService(3, nil, discardLogger())

		_, err := svc.Hello(context.Background(), "abcd")
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Hello() error = %v, want ErrValidation", err)
		}
	})

	t.Run("zero limit accepts long names", func(t *testing.T) {
		t.Parallel()
		svc := NewGreetingService(0, nil, discardLogger())

		long := strings.Repeat("a", 5000)
		got, err := svc.Hello(context.Background(), long)
		if err != nil {
			t.Fatalf("Hello() error = %v, want nil", err)
		}
		if !strings.HasPrefix(got.Message, "Hello, Aaa") {
			t.Errorf("Message prefix = %q, want %q", got.Message[:10], "Hello, Aaa")
		}
	})
}

// --- Hi ---

func TestGreetingService_Hi(t *testing.T) {
	t.Parallel()

	svc := NewGreetingService(greeting.DefaultMaxNameLength, nil, discardLogger())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "with name", input: "bob", want: "Hi, Bob!"},
		{name: "without name", input: "", want: "Hello!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.Hi(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Hi() error = %v, want nil", err)
			}
			if got.Message != tt.want {
				t.Errorf("Message = %q, want %q", got.Message, tt.want)
			}
		})
	}
}

// --- Capitalize ---

func TestGreetingService_Capitalize(t *testing.T) {
	t.Parallel()

	svc := NewGreetingService(1, nil, discardLogger())

	// The name limit does not apply to free text.
	in := "what\n\ta\t\nwonderful \r\n world \n   \t  "
	want := "What\n\tA\t\nWonderful \r\n World \n   \t  "
	if got := svc.Capitalize(context.Background(), in); got != want {
		t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
	}
}

// --- Metrics and logging ---

func TestGreetingService_RecordsMetrics(t *testing.T) {
	t.Parallel()

	metrics, reader := newTestMetrics(t)
	svc := NewGreetingService(5, metrics, discardLogger())
	ctx := context.Background()

	_, _ = svc.Hello(ctx, "ann")
	_, _ = svc.Hello(ctx, "bob")
	_, _ = svc.Hello(ctx, "too long name")
	_, _ = svc.Hi(ctx, "")

	got := greetingCounts(t, reader)
	want := map[string]int64{
		"hello/success": 2,
		"hello/error":   1,
		"hi/success":    1,
	}
	for key, n := range want {
		if got[key] != n {
			t.Errorf("greeting.total[%s] = %d, want %d (all: %v)", key, got[key], n, got)
		}
	}
}

func TestGreetingService_LogsRejection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	svc := NewGreetingService(2, nil, logger)

	_, _ = svc.Hello(context.Background(), "abc")

	out := buf.String()
	if !strings.Contains(out, `"msg":"rejected greeting"`) {
		t.Errorf("log output = %q, want a rejected greeting entry", out)
	}
	if !strings.Contains(out, `"operation":"Hello"`) {
		t.Errorf("log output = %q, want operation attribute", out)
	}
	if strings.Contains(out, "abc") {
		t.Errorf("log output = %q, want the raw name kept out of logs", out)
	}
}

func TestGreetingService_PrefersRequestLogger(t *testing.T) {
	t.Parallel()

	var base, request bytes.Buffer
	svc := NewGreetingService(0, nil, slog.New(slog.NewJSONHandler(&base, nil)))

	reqLogger := slog.New(slog.NewJSONHandler(&request, nil)).With(slog.String("request_id", "req-42"))
	ctx := logging.WithLogger(context.Background(), reqLogger)

	if _, err := svc.Hi(ctx, "ada"); err != nil {
		t.Fatalf("Hi() error = %v", err)
	}

	if base.Len() != 0 {
		t.Errorf("service logger got %q, want nothing", base.String())
	}
	if !strings.Contains(request.String(), `"request_id":"req-42"`) {
		t.Errorf("request log = %q, want request_id", request.String())
	}
}
