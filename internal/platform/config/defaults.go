package config

const (
	defaultServerPort    = 8080
	defaultMaxNameLength = 256
	defaultRateLimitRPS  = 0
	defaultRateBurst     = 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.handler_timeout":                "8s",
		"server.rate_limit.requests_per_second": defaultRateLimitRPS,
		"server.rate_limit.burst_size":          defaultRateBurst,

		"log.level":  "info",
		"log.format": "json",

		"greeting.max_name_length": defaultMaxNameLength,

		"static.enabled": true,
		"static.dir":     "resources",
		"static.prefix":  "/res",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "greeter",
	}
}
