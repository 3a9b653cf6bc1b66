package shared

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-faster/errors"

	"hrm/internal/domain/core"
)

// DecodeJSON reads exactly one JSON value from the request body. Malformed
// bodies are reported as validation errors on the "body" field.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return core.Validation("request body required", core.FieldIssue{Field: "body", Reason: "field required"})
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return core.Validation("request body required", core.FieldIssue{Field: "body", Reason: "field required"})
		}
		return core.Validation("invalid JSON body", core.FieldIssue{Field: "body", Reason: jsonReason(err)})
	}
	if dec.More() {
		return core.Validation("invalid JSON body", core.FieldIssue{Field: "body", Reason: "must contain a single JSON object"})
	}
	return nil
}

func jsonReason(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " has the wrong type"
	}
	return "malformed JSON"
}

func ClientIP(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
