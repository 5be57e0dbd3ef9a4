package main

import (
	"log/slog"
	"net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/greeter/internal/adapters/http"
	"github.com/jsamuelsen11/greeter/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/greeter/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/greeter/internal/app"
	"github.com/jsamuelsen11/greeter/internal/platform/config"
	"github.com/jsamuelsen11/greeter/internal/platform/health"
	"github.com/jsamuelsen11/greeter/internal/platform/telemetry"
	"github.com/jsamuelsen11/greeter/internal/ports"
)

// provide registers the service graph. Nothing is built until the server is
// invoked.
func provide(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)

	do.Provide(i, func(do.Injector) (ports.GreetingService, error) {
		return app.NewGreetingService(cfg.Greeting.MaxNameLength, metrics, logger), nil
	})

	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		if cfg.Static.Enabled {
			registry.Register(health.NewDirChecker("static-files", cfg.Static.Dir))
		}
		return registry, nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.GreetingHandler, error) {
		return handlers.NewGreetingHandler(do.MustInvoke[ports.GreetingService](i)), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(i, func(do.Injector) (adapthttp.StaticMount, error) {
		if !cfg.Static.Enabled {
			return adapthttp.StaticMount{}, nil
		}
		return adapthttp.StaticMount{
			Prefix:  cfg.Static.Prefix,
			Handler: handlers.NewStaticHandler(cfg.Static.Dir),
		}, nil
	})

	do.Provide(i, func(i do.Injector) (http.Handler, error) {
		rl := cfg.Server.RateLimit
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.GreetingHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			do.MustInvoke[adapthttp.StaticMount](i),
			adapthttp.Middlewares{
				Global: []func(http.Handler) http.Handler{
					middleware.Recovery(logger),
					middleware.RequestID(),
					middleware.CorrelationID(),
					middleware.OpenTelemetry(metrics),
					middleware.Logging(logger),
					middleware.RateLimit(rl.RequestsPerSecond, rl.BurstSize),
				},
				Route: []func(http.Handler) http.Handler{
					middleware.Timeout(cfg.Server.HandlerTimeout),
				},
			},
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[http.Handler](i), logger), nil
	})
}
