package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"hrm/internal/requestctx"
)

// RequestRecorder receives one observation per finished request.
type RequestRecorder interface {
	Record(method, route string, status int, duration time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Logger logs every request and reports it to rec when rec is not nil. The
// route label is the matched chi pattern so ids do not explode cardinality.
func Logger(logger logrus.FieldLogger, rec RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			elapsed := time.Since(start)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			if rec != nil {
				rec.Record(r.Method, route, recorder.status, elapsed)
			}

			entry := logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"route":      route,
				"path":       r.URL.Path,
				"status":     recorder.status,
				"durationMs": elapsed.Milliseconds(),
				"requestId":  requestctx.RequestID(r.Context()),
			})
			switch {
			case recorder.status >= http.StatusInternalServerError:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
		})
	}
}
