// Command server runs the greeting HTTP service. APP_PROFILE selects the
// configuration profile under ./configs.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/greeter/internal/adapters/http"
	"github.com/jsamuelsen11/greeter/internal/platform/config"
	"github.com/jsamuelsen11/greeter/internal/platform/logging"
	"github.com/jsamuelsen11/greeter/internal/platform/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	drainTimeout     = 15 * time.Second
	telemetryTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("version", version),
		slog.String("profile", profile),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := startTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown", slog.Any("error", err))
		}
	}()

	injector := do.New()
	provide(injector, cfg, logger, otel.Metrics)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}

	l, err := net.Listen("tcp", server.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", server.Addr(), err)
	}

	err = server.Run(ctx, l, drainTimeout)
	logger.Info("shutdown complete", slog.Bool("signaled", ctx.Err() != nil))
	return err
}

// startTelemetry returns zero Providers when telemetry is disabled, which
// leaves Metrics nil and recording off.
func startTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Options{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
		Exporter:       cfg.Telemetry.Exporter,
		Endpoint:       cfg.Telemetry.Endpoint,
	})
}
