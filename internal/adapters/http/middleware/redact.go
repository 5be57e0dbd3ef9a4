package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/greeter/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers into slog attributes sorted by name, one per
// header with multiple values joined by commas. Headers listed in
// logging.SensitiveHeaders are replaced with "[REDACTED]".
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}

// headersAttr groups the redacted headers under a "headers" key.
func headersAttr(headers http.Header) slog.Attr {
	return slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(headers)...)}
}
