// Package health holds the readiness registry and the checkers registered
// with it at startup.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/greeter/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry collects [ports.HealthChecker]s and runs them for the readiness
// probe. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register appends checker. Checkers sharing a name overwrite each other in
// CheckAll results, with the most recently registered one winning.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll runs every registered checker concurrently and returns the
// results keyed by checker name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	type outcome struct {
		name string
		err  error
	}
	outcomes := make([]outcome, len(checkers))

	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			outcomes[i] = outcome{name: c.Name(), err: c.HealthCheck(ctx)}
		})
	}
	wg.Wait()

	results := make(map[string]error, len(outcomes))
	for _, o := range outcomes {
		results[o.name] = o.err
	}
	return results
}
