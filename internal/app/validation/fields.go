// Package validation turns raw, string-keyed input from forms, query
// strings and JSON bodies into typed entity values, patches and filters.
package validation

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yigit/personnel/internal/pkg/apperrors"
)

// Fields is untyped external input keyed by field name.
type Fields map[string]string

// FromValues builds Fields from form or query values, keeping the first
// value of every key.
func FromValues(values url.Values) Fields {
	f := make(Fields, len(values))
	for k, v := range values {
		if len(v) > 0 {
			f[k] = v[0]
		}
	}
	return f
}

// FromJSON builds Fields from a decoded JSON object. Strings and numbers are
// accepted as-is and null means absent; any other value is a FieldError.
func FromJSON(obj map[string]interface{}) (Fields, error) {
	f := make(Fields, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			f[k] = val
		case json.Number:
			f[k] = val.String()
		case float64:
			f[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return nil, &FieldError{Field: k, Reason: fmt.Sprintf("unsupported value of type %T", v)}
		}
	}
	return f, nil
}

// Get returns the trimmed value for key. Empty and whitespace-only values
// are reported as absent.
func (f Fields) Get(key string) (string, bool) {
	v := strings.TrimSpace(f[key])
	if v == "" {
		return "", false
	}
	return v, true
}

// FieldError names the input field that is missing or malformed.
type FieldError struct {
	Field  string
	Reason string
}

// Error implements error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", apperrors.ErrValidationFailed, e.Field, e.Reason)
}

// Unwrap implements errors.Unwrap interface
func (e *FieldError) Unwrap() error {
	return apperrors.ErrValidationFailed
}
