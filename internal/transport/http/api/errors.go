package api

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"hrm/internal/domain/core"
	"hrm/internal/requestctx"
)

const CodePayloadTooLarge = "payload_too_large"

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Detail    string            `json:"detail"`
	Code      string            `json:"code"`
	Fields    []core.FieldIssue `json:"fields,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

func StatusFor(kind core.Kind) int {
	switch kind {
	case core.KindValidation:
		return http.StatusUnprocessableEntity
	case core.KindBadRequest:
		return http.StatusBadRequest
	case core.KindNotFound:
		return http.StatusNotFound
	case core.KindConflict:
		return http.StatusConflict
	case core.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func Fail(w http.ResponseWriter, r *http.Request, logger logrus.FieldLogger, status int, code, detail string) {
	WriteJSON(w, logger, status, ErrorBody{
		Detail:    detail,
		Code:      code,
		RequestID: requestctx.RequestID(r.Context()),
	})
}

// WriteError renders err using its domain kind. Internal errors are logged and
// answered with a generic detail.
func WriteError(w http.ResponseWriter, r *http.Request, logger logrus.FieldLogger, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		Fail(w, r, logger, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "request body too large")
		return
	}

	reqID := requestctx.RequestID(r.Context())
	kind := core.KindOf(err)
	status := StatusFor(kind)

	body := ErrorBody{Code: kind.String(), RequestID: reqID}
	var domainErr *core.Error
	if kind != core.KindInternal && errors.As(err, &domainErr) {
		body.Detail = domainErr.Message
		body.Fields = domainErr.Fields
	} else {
		body.Detail = http.StatusText(http.StatusInternalServerError)
	}

	if logger != nil {
		entry := logger.WithFields(logrus.Fields{
			"requestId": reqID,
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    status,
		}).WithError(err)
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Debug("request rejected")
		}
	}

	WriteJSON(w, logger, status, body)
}
