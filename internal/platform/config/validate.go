package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every validation failure so Validate can report them
// together.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), got)
	}
}

// Validate reports every invalid setting, joined with errors.Join.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Greeting.check(&p)
	c.Static.check(&p)
	c.Telemetry.check(&p)
	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be in 1..65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		p.addf("server.read_timeout must be positive, got %s", s.ReadTimeout)
	}
	if s.WriteTimeout <= 0 {
		p.addf("server.write_timeout must be positive, got %s", s.WriteTimeout)
	}
	if s.HandlerTimeout < 0 {
		p.addf("server.handler_timeout must not be negative, got %s", s.HandlerTimeout)
	}
	if s.WriteTimeout > 0 && s.HandlerTimeout >= s.WriteTimeout {
		p.addf("server.handler_timeout (%s) must be shorter than server.write_timeout (%s)",
			s.HandlerTimeout, s.WriteTimeout)
	}

	rl := s.RateLimit
	if rl.RequestsPerSecond < 0 {
		p.addf("server.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	}
	if rl.RequestsPerSecond > 0 && rl.BurstSize < 1 {
		p.addf("server.rate_limit.burst_size must be at least 1 while rate limiting, got %d", rl.BurstSize)
	}
}

func (l *LogConfig) check(p *problems) {
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
}

func (g *GreetingConfig) check(p *problems) {
	if g.MaxNameLength < 0 {
		p.addf("greeting.max_name_length must not be negative, got %d", g.MaxNameLength)
	}
}

func (s *StaticConfig) check(p *problems) {
	if !s.Enabled {
		return
	}
	if strings.TrimSpace(s.Dir) == "" {
		p.addf("static.dir must be set while static.enabled is true")
	}
	if !strings.HasPrefix(s.Prefix, "/") || s.Prefix == "/" {
		p.addf("static.prefix must be a sub-path starting with '/', got %q", s.Prefix)
	}
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" && t.Endpoint == "" {
		p.addf("telemetry.endpoint must be set for the otlp exporter")
	}
	if t.ServiceName == "" {
		p.addf("telemetry.service_name must be set while telemetry is enabled")
	}
}
