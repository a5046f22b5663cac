package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name, masking
// logging.CredentialHeaders. Repeated values are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := redacted
		if !slices.Contains(logging.CredentialHeaders, http.CanonicalHeaderKey(name)) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
