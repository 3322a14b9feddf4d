package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted calendar date format (ISO 8601 date).
const DateLayout = "2006-01-02"

// Column widths of the personnel schema
const (
	NameMaxLength   = 100
	StatusMaxLength = 20
	PhoneMaxLength  = 20
	EmailMaxLength  = 100
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator. Struct fields are reported under
// their json name so errors match the submitted keys.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return instance
}

// Violation is the first constraint a struct failed.
type Violation struct {
	Field  string
	Reason string
}

// FirstViolation runs the validator over s and returns the first failing
// field, or nil when s is valid.
func FirstViolation(s interface{}) (*Violation, error) {
	err := Validator().Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil, err
	}

	fe := verrs[0]
	return &Violation{Field: fe.Field(), Reason: formatValidationError(fe)}, nil
}

// formatValidationError creates a human-readable validation message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + e.Tag() + " validation"
	}
}
