package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/greeter/internal/platform/health"
	"github.com/jsamuelsen11/greeter/internal/ports"
	"github.com/jsamuelsen11/greeter/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errGone := errors.New("directory resources does not exist")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []ports.HealthChecker
		want     map[string]error
	}{
		{
			name:     "empty registry",
			checkers: func(*testing.T) []ports.HealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "static-files", nil), checker(t, "templates", nil)}
			},
			want: map[string]error{"static-files": nil, "templates": nil},
		},
		{
			name: "one failing",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "templates", nil), checker(t, "static-files", errGone)}
			},
			want: map[string]error{"static-files": errGone, "templates": nil},
		},
		{
			name: "duplicate names keep the last registered",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "static-files", nil), checker(t, "static-files", errGone)}
			},
			want: map[string]error{"static-files": errGone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CheckAll() = %v, want %v", got, tt.want)
			}
			for name, want := range tt.want {
				if err, ok := got[name]; !ok || !errors.Is(err, want) {
					t.Errorf("CheckAll()[%q] = %v, want %v", name, err, want)
				}
			}
		})
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("static-files")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["static-files"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["static-files"])
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	for i := range goroutines {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 2)
	waitForPeer := func(context.Context) error {
		started <- struct{}{}
		deadline := time.After(2 * time.Second)
		for len(started) < 2 {
			select {
			case <-deadline:
				return errors.New("peer check never started")
			case <-time.After(time.Millisecond):
			}
		}
		return nil
	}

	a := mocks.NewMockHealthChecker(t)
	a.EXPECT().Name().Return("static-files")
	a.EXPECT().HealthCheck(mock.Anything).RunAndReturn(waitForPeer)

	b := mocks.NewMockHealthChecker(t)
	b.EXPECT().Name().Return("templates")
	b.EXPECT().HealthCheck(mock.Anything).RunAndReturn(waitForPeer)

	r := health.New()
	r.Register(a)
	r.Register(b)

	for name, err := range r.CheckAll(context.Background()) {
		if err != nil {
			t.Errorf("%s check = %v, want nil", name, err)
		}
	}
}
