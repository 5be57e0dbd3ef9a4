package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/greeter/internal/domain"
)

// pathParam returns the percent-decoded value of a chi URL parameter.
//
// chi matches against r.URL.RawPath when it is set, which leaves params
// still escaped (for example "a%2Fb"). Otherwise it matches the already
// decoded r.URL.Path and the value is returned as is.
func pathParam(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", domain.NewFieldError(param, "malformed percent-encoding")
	}
	return v, nil
}

// wantsJSON reports whether the client prefers a JSON rendering over plain
// text.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, s); err != nil {
		slog.Error("writing response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", slog.Any("error", err))
	}
}

const maxBodyBytes = 1 << 20

type validatable interface {
	Validate() error
}

// bindJSON decodes the request body into dst and validates it. The body
// must hold exactly one JSON value. Every failure comes back as a
// *domain.ValidationError for dto.WriteProblem.
func bindJSON[T validatable](w http.ResponseWriter, r *http.Request, dst T) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil {
		// Anything but EOF after the value is trailing data.
		if err = dec.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return dst.Validate()
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.NewFieldError("body", fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit))
	}
	return domain.NewFieldError("body", "invalid JSON")
}
