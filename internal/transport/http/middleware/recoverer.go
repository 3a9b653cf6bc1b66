package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"hrm/internal/requestctx"
	"hrm/internal/transport/http/api"
)

func Recoverer(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.WithFields(logrus.Fields{
					"panic":     rec,
					"stack":     string(debug.Stack()),
					"method":    r.Method,
					"path":      r.URL.Path,
					"requestId": requestctx.RequestID(r.Context()),
				}).Error("handler panic")
				api.Fail(w, r, logger, http.StatusInternalServerError, "internal_error", http.StatusText(http.StatusInternalServerError))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
