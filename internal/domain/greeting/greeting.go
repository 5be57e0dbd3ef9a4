// Package greeting builds the greeting messages returned by the service.
// Names are formatted with text.Capitalize before being embedded.
package greeting

import (
	"fmt"
	"unicode/utf8"

	"github.com/jsamuelsen11/greeter/internal/domain"
	"github.com/jsamuelsen11/greeter/internal/domain/text"
)

// DefaultMaxNameLength is the name limit, in characters, used when the
// configuration does not set one.
const DefaultMaxNameLength = 256

// Kind identifies which greeting form produced a message.
type Kind string

// Supported greeting kinds.
const (
	KindHello Kind = "hello"
	KindHi    Kind = "hi"
)

// Greeting is a rendered greeting for a single name.
type Greeting struct {
	Kind    Kind
	Name    string // as received, before capitalization
	Message string
}

// Hello renders "Hello, <Name>".
func Hello(name string) Greeting {
	return Greeting{
		Kind:    KindHello,
		Name:    name,
		Message: "Hello, " + text.Capitalize(name),
	}
}

// Hi renders "Hi, <Name>!", or a bare "Hello!" when no name was given.
func Hi(name string) Greeting {
	msg := "Hello!"
	if name != "" {
		msg = "Hi, " + text.Capitalize(name) + "!"
	}
	return Greeting{
		Kind:    KindHi,
		Name:    name,
		Message: msg,
	}
}

// ValidateName rejects names longer than maxLen characters.
// A maxLen of zero or less disables the check.
func ValidateName(name string, maxLen int) error {
	if maxLen <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(name); n > maxLen {
		return domain.NewFieldError("name", fmt.Sprintf("must be at most %d characters, got %d", maxLen, n))
	}
	return nil
}
