package ports

import (
	"context"

	"github.com/jsamuelsen11/greeter/internal/domain/greeting"
)

// GreetingService defines the service port for greeting and capitalization
// operations. Implemented by the application layer; called by inbound
// adapters (HTTP handlers).
type GreetingService interface {
	// Hello greets name as "Hello, <Name>".
	// Returns domain.ErrValidation if the name exceeds the configured length.
	Hello(ctx context.Context, name string) (greeting.Greeting, error)

	// Hi greets name as "Hi, <Name>!", or "Hello!" when name is empty.
	// Returns domain.ErrValidation if the name exceeds the configured length.
	Hi(ctx context.Context, name string) (greeting.Greeting, error)

	// Capitalize uppercases the first character of every word in text,
	// preserving all whitespace. It never fails.
	Capitalize(ctx context.Context, text string) string
}
