package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/greeter/internal/platform/config"
)

// DefaultDrainTimeout bounds Shutdown when the caller's context has no
// deadline.
const DefaultDrainTimeout = 10 * time.Second

// Server is an http.Server that drains in-flight requests on shutdown.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer configures a Server for cfg. A nil logger discards output.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
	return &Server{srv: srv, logger: logger}
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Start listens on Addr and serves until Shutdown.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(l)
}

// Serve serves on l until Shutdown. A graceful stop returns nil.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("http server listening", slog.String("addr", l.Addr().String()))

	err := s.srv.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serving http: %w", err)
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Without a deadline on ctx it waits at most DefaultDrainTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultDrainTimeout)
		defer cancel()
	}

	s.logger.Info("http server draining")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("draining http server: %w", err)
	}
	return nil
}

// Run serves on l until ctx is done, then drains for up to drain. It returns
// the serve error if the server stops on its own.
func (s *Server) Run(ctx context.Context, l net.Listener, drain time.Duration) error {
	served := make(chan error, 1)
	go func() { served <- s.Serve(l) }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drain)
	defer cancel()

	shutdownErr := s.Shutdown(drainCtx)
	return errors.Join(shutdownErr, <-served)
}
