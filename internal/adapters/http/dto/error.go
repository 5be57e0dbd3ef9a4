package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/greeter/internal/domain"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

// internalDetail replaces the message of errors that map to no domain
// sentinel, so internals never reach the client.
const internalDetail = "an unexpected error occurred"

// Problem is an RFC 9457 problem details body.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []FieldProblem `json:"errors,omitempty"`
}

// FieldProblem describes one rejected input. Location is the body field or
// the path/query parameter name.
type FieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// ErrMethodNotAllowed reports a known path requested with an unsupported
// method. It has no domain meaning, so it lives with the transport.
var ErrMethodNotAllowed = errors.New("method not allowed")

// statusBySentinel is checked in order with errors.Is.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrRateLimited, http.StatusTooManyRequests},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{domain.ErrTimeout, http.StatusGatewayTimeout},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
}

// NewProblem describes err for the request r.
func NewProblem(r *http.Request, err error) Problem {
	p := Problem{
		Type:     "about:blank",
		Status:   http.StatusInternalServerError,
		Detail:   internalDetail,
		Instance: r.RequestURI,
	}
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			p.Status = m.status
			p.Detail = err.Error()
			break
		}
	}
	p.Title = http.StatusText(p.Status)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = fieldProblems(verr.Fields)
	}
	return p
}

// WriteProblem writes err as a problem+json response.
func WriteProblem(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)

	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(p.Status)
	if encErr := json.NewEncoder(w).Encode(p); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", encErr))
	}
}

func fieldProblems(fields map[string]string) []FieldProblem {
	out := make([]FieldProblem, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldProblem{Location: field, Message: msg})
	}
	slices.SortFunc(out, func(a, b FieldProblem) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}
