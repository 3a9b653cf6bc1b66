package shared

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrm/internal/domain/core"
)

type Validator struct {
	issues []core.FieldIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]core.FieldIssue, 0, 2)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, core.FieldIssue{Field: strings.TrimSpace(field), Reason: reason})
}

// ID parses a positive 32-bit integer, the range of the SERIAL key columns.
func (v *Validator) ID(field, raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || id <= 0 {
		v.Add(field, "must be a positive integer")
		return 0
	}
	return id
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []core.FieldIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]core.FieldIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Err returns nil when nothing was collected.
func (v *Validator) Err() error {
	if !v.HasIssues() {
		return nil
	}
	return core.Validation("request validation failed", v.Issues()...)
}

// PathID reads the named chi URL parameter as an id.
func PathID(r *http.Request, param string) (int64, error) {
	v := NewValidator()
	id := v.ID(param, chi.URLParam(r, param))
	return id, v.Err()
}

// OptionalQuery returns the value of key and whether it was present at all.
// A present but blank value is a validation error.
func OptionalQuery(r *http.Request, key string) (string, bool, error) {
	values, ok := r.URL.Query()[key]
	if !ok {
		return "", false, nil
	}
	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	if value == "" {
		v := NewValidator()
		v.Add(key, "must be at least 1 characters")
		return "", true, v.Err()
	}
	return value, true, nil
}
