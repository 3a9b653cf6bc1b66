package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"hrm/internal/transport/http/api"
)

// BodyLimit caps request bodies on writes. Handlers that hit the cap get an
// *http.MaxBytesError from the decoder, which api.WriteError renders as 413.
func BodyLimit(maxBytes int64, logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
				if r.ContentLength > maxBytes {
					api.Fail(w, r, logger, http.StatusRequestEntityTooLarge, api.CodePayloadTooLarge, "request body too large")
					return
				}
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
