package ports

import "context"

// HealthChecker reports on one dependency the service needs to be ready,
// such as the static asset directory.
type HealthChecker interface {
	// Name keys the checker's result in the readiness body.
	Name() string
	// HealthCheck returns nil when healthy. It should give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry holds the checkers consulted by the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
