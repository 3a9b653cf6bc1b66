package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// WriteJSON encodes payload with status. Encode failures go to logger, or to
// the standard logger when it is nil.
func WriteJSON(w http.ResponseWriter, logger logrus.FieldLogger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.WithError(err).WithField("status", status).Warn("write json failed")
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
