package validation

import (
	"time"

	"github.com/yigit/personnel/internal/app/models"
	rules "github.com/yigit/personnel/internal/pkg/validation"
)

const (
	reasonRequired = "is required"
	reasonDate     = "must be a date in YYYY-MM-DD format"
	reasonNumber   = "must be a number"
	reasonInteger  = "must be an integer"
)

// reader pulls typed values out of Fields and remembers the first failure.
type reader struct {
	f   Fields
	err *FieldError
}

func (r *reader) fail(field, reason string) {
	if r.err == nil {
		r.err = &FieldError{Field: field, Reason: reason}
	}
}

func (r *reader) requiredString(key string) string {
	v, ok := r.f.Get(key)
	if !ok {
		r.fail(key, reasonRequired)
	}
	return v
}

func (r *reader) requiredDate(key string) time.Time {
	if d := r.optionalDate(key); d != nil {
		return *d
	}
	if _, ok := r.f.Get(key); !ok {
		r.fail(key, reasonRequired)
	}
	return time.Time{}
}

func (r *reader) requiredFloat(key string) float64 {
	if n := r.optionalFloat(key); n != nil {
		return *n
	}
	if _, ok := r.f.Get(key); !ok {
		r.fail(key, reasonRequired)
	}
	return 0
}

func (r *reader) requiredInt(key string) int64 {
	if n := r.optionalInt(key); n != nil {
		return *n
	}
	if _, ok := r.f.Get(key); !ok {
		r.fail(key, reasonRequired)
	}
	return 0
}

func (r *reader) optionalString(key string) *string {
	v, ok := r.f.Get(key)
	if !ok {
		return nil
	}
	return &v
}

func (r *reader) optionalDate(key string) *time.Time {
	v, ok := r.f.Get(key)
	if !ok {
		return nil
	}
	d := ParseOptionalDate(v)
	if d == nil {
		r.fail(key, reasonDate)
	}
	return d
}

func (r *reader) optionalFloat(key string) *float64 {
	v, ok := r.f.Get(key)
	if !ok {
		return nil
	}
	n := ParseOptionalFloat(v)
	if n == nil {
		r.fail(key, reasonNumber)
	}
	return n
}

func (r *reader) optionalInt(key string) *int64 {
	v, ok := r.f.Get(key)
	if !ok {
		return nil
	}
	n := ParseOptionalInt(v)
	if n == nil {
		r.fail(key, reasonInteger)
	}
	return n
}

// check runs the declared struct constraints once every field parsed.
func (r *reader) check(s interface{}) error {
	if r.err != nil {
		return r.err
	}
	v, err := rules.FirstViolation(s)
	if err != nil {
		return err
	}
	if v != nil {
		return &FieldError{Field: v.Field, Reason: v.Reason}
	}
	return nil
}

// ValidateEmployeeCreate requires every employee attribute and returns the
// first missing or malformed one as a *FieldError.
func ValidateEmployeeCreate(f Fields) (models.Employee, error) {
	r := &reader{f: f}
	e := models.Employee{
		FullName:     r.requiredString("full_name"),
		BirthDate:    r.requiredDate("birth_date"),
		StartDate:    r.requiredDate("start_date"),
		Salary:       r.requiredFloat("salary"),
		Rate:         r.requiredFloat("rate"),
		Status:       r.requiredString("status"),
		PhoneNumber:  r.requiredString("phone_number"),
		Email:        r.requiredString("email"),
		DepartmentID: r.requiredInt("department_id"),
		PositionID:   r.requiredInt("position_id"),
	}
	if err := r.check(&e); err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

// ValidateEmployeeUpdate accepts any subset of employee attributes. A present
// field that fails to parse rejects the whole patch.
func ValidateEmployeeUpdate(f Fields) (models.EmployeePatch, error) {
	r := &reader{f: f}
	p := models.EmployeePatch{
		FullName:     r.optionalString("full_name"),
		BirthDate:    r.optionalDate("birth_date"),
		StartDate:    r.optionalDate("start_date"),
		Salary:       r.optionalFloat("salary"),
		Rate:         r.optionalFloat("rate"),
		Status:       r.optionalString("status"),
		PhoneNumber:  r.optionalString("phone_number"),
		Email:        r.optionalString("email"),
		DepartmentID: r.optionalInt("department_id"),
		PositionID:   r.optionalInt("position_id"),
	}
	if err := r.check(&p); err != nil {
		return models.EmployeePatch{}, err
	}
	return p, nil
}

// ValidateDepartmentCreate requires a department name.
func ValidateDepartmentCreate(f Fields) (models.Department, error) {
	r := &reader{f: f}
	d := models.Department{Name: r.requiredString("name")}
	if err := r.check(&d); err != nil {
		return models.Department{}, err
	}
	return d, nil
}

// ValidatePositionCreate requires a position name.
func ValidatePositionCreate(f Fields) (models.Position, error) {
	r := &reader{f: f}
	p := models.Position{Name: r.requiredString("name")}
	if err := r.check(&p); err != nil {
		return models.Position{}, err
	}
	return p, nil
}

// ValidateNamePatch reads the optional name shared by department and
// position updates.
func ValidateNamePatch(f Fields) (models.DepartmentPatch, error) {
	r := &reader{f: f}
	p := models.DepartmentPatch{Name: r.optionalString("name")}
	if err := r.check(&p); err != nil {
		return models.DepartmentPatch{}, err
	}
	return p, nil
}

// ValidateDepartmentUpdate returns the department patch described by f.
func ValidateDepartmentUpdate(f Fields) (models.DepartmentPatch, error) {
	return ValidateNamePatch(f)
}

// ValidatePositionUpdate returns the position patch described by f.
func ValidatePositionUpdate(f Fields) (models.PositionPatch, error) {
	p, err := ValidateNamePatch(f)
	if err != nil {
		return models.PositionPatch{}, err
	}
	return models.PositionPatch{Name: p.Name}, nil
}
