// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/greeter/internal/domain/greeting"
	"github.com/jsamuelsen11/greeter/internal/domain/text"
	"github.com/jsamuelsen11/greeter/internal/platform/logging"
	"github.com/jsamuelsen11/greeter/internal/platform/telemetry"
	"github.com/jsamuelsen11/greeter/internal/ports"
)

// Compile-time check that GreetingService implements ports.GreetingService.
var _ ports.GreetingService = (*GreetingService)(nil)

// GreetingService implements ports.GreetingService. It validates names,
// delegates formatting to the greeting and text domain packages, and
// records logs and metrics for each call.
type GreetingService struct {
	maxNameLength int
	metrics       *telemetry.Metrics
	logger        *slog.Logger
}

// NewGreetingService creates a GreetingService. maxNameLength caps greeted
// names in characters (zero disables the cap). If metrics is nil, metric
// recording is skipped. A nil logger discards all output.
func NewGreetingService(maxNameLength int, metrics *telemetry.Metrics, logger *slog.Logger) *GreetingService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GreetingService{
		maxNameLength: maxNameLength,
		metrics:       metrics,
		logger:        logger,
	}
}

// Hello greets name as "Hello, <Name>".
func (s *GreetingService) Hello(ctx context.Context, name string) (greeting.Greeting, error) {
	return s.greet(ctx, "Hello", greeting.KindHello, name, greeting.Hello)
}

// Hi greets name as "Hi, <Name>!", or "Hello!" when name is empty.
func (s *GreetingService) Hi(ctx context.Context, name string) (greeting.Greeting, error) {
	return s.greet(ctx, "Hi", greeting.KindHi, name, greeting.Hi)
}

// Capitalize uppercases the first character of every word in t.
func (s *GreetingService) Capitalize(ctx context.Context, t string) string {
	n := utf8.RuneCountInString(t)
	s.log(ctx).DebugContext(ctx, "capitalizing text", slog.Int("runes", n))
	s.recordRunes(ctx, n)

	return text.Capitalize(t)
}

func (s *GreetingService) greet(
	ctx context.Context,
	operation string,
	kind greeting.Kind,
	name string,
	render func(string) greeting.Greeting,
) (greeting.Greeting, error) {
	n := utf8.RuneCountInString(name)

	if err := greeting.ValidateName(name, s.maxNameLength); err != nil {
		s.log(ctx).WarnContext(ctx, "rejected greeting",
			slog.String("operation", operation),
			slog.Int("name_length", n),
			slog.Any("error", err),
		)
		s.recordGreeting(ctx, kind, err)
		return greeting.Greeting{}, err
	}

	s.recordRunes(ctx, n)
	g := render(name)

	s.log(ctx).InfoContext(ctx, "rendered greeting",
		slog.String("operation", operation),
		slog.Int("name_length", n),
	)
	s.recordGreeting(ctx, kind, nil)

	return g, nil
}

// log prefers the request logger installed by the logging middleware, which
// carries the request and correlation IDs.
func (s *GreetingService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// recordGreeting counts a greeting outcome. Safe to call with nil metrics.
func (s *GreetingService) recordGreeting(ctx context.Context, kind greeting.Kind, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	s.metrics.GreetingTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrGreetingKind.String(string(kind)),
		telemetry.AttrResult.String(result),
	))
}

// recordRunes records the capitalizer input size. Safe to call with nil metrics.
func (s *GreetingService) recordRunes(ctx context.Context, n int) {
	if s.metrics == nil {
		return
	}
	s.metrics.CapitalizeRunes.Record(ctx, int64(n))
}
