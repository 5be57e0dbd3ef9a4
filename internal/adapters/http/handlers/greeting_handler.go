package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/greeter/internal/adapters/http/dto"
	"github.com/jsamuelsen11/greeter/internal/domain/greeting"
	"github.com/jsamuelsen11/greeter/internal/ports"
)

// GreetingHandler handles the greeting and capitalize endpoints.
type GreetingHandler struct {
	svc ports.GreetingService
}

// NewGreetingHandler creates a new GreetingHandler with the given service port.
func NewGreetingHandler(svc ports.GreetingService) *GreetingHandler {
	return &GreetingHandler{svc: svc}
}

// Hello handles GET /hello/{name}.
func (h *GreetingHandler) Hello(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	g, err := h.svc.Hello(r.Context(), name)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	h.writeGreeting(w, r, g)
}

// Hi handles GET /hi. The name comes from the optional "name" query
// parameter.
func (h *GreetingHandler) Hi(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Hi(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	h.writeGreeting(w, r, g)
}

// Capitalize handles POST /api/v1/capitalize.
func (h *GreetingHandler) Capitalize(w http.ResponseWriter, r *http.Request) {
	var req dto.CapitalizeRequest
	if err := bindJSON(w, r, &req); err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CapitalizeResponse{
		Text: h.svc.Capitalize(r.Context(), *req.Text),
	})
}

func (h *GreetingHandler) writeGreeting(w http.ResponseWriter, r *http.Request, g greeting.Greeting) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, dto.ToGreetingResponse(g))
		return
	}
	writeText(w, http.StatusOK, g.Message)
}
