package dto

import "github.com/jsamuelsen11/greeter/internal/domain/greeting"

// CapitalizeResponse represents the JSON body returned by
// POST /api/v1/capitalize.
type CapitalizeResponse struct {
	Text string `json:"text"`
}

// GreetingResponse represents a greeting as JSON. It is returned when the
// client asks for application/json instead of plain text.
type GreetingResponse struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ToGreetingResponse converts a domain Greeting to its response DTO.
func ToGreetingResponse(g greeting.Greeting) GreetingResponse {
	return GreetingResponse{
		Kind:    string(g.Kind),
		Name:    g.Name,
		Message: g.Message,
	}
}

// Health probe states.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes. Checks is
// omitted from the liveness body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse summarizes readiness results keyed by checker name. Each
// check reports "ok" or its error text; the overall status is not_ready when
// any check failed.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make(map[string]string, len(results)),
	}
	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
