package models

import "time"

// Employee represents a person on the payroll
type Employee struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name" validate:"required,max=100"`
	BirthDate    time.Time `json:"birth_date"`
	StartDate    time.Time `json:"start_date"`
	Salary       float64   `json:"salary"`
	Rate         float64   `json:"rate"`
	Status       string    `json:"status" validate:"required,max=20"`
	PhoneNumber  string    `json:"phone_number" validate:"required,max=20"`
	Email        string    `json:"email" validate:"required,max=100"`
	DepartmentID int64     `json:"department_id" validate:"gt=0"`
	PositionID   int64     `json:"position_id" validate:"gt=0"`
}

// EmployeePatch is a partial update: one optional field per mutable
// attribute. Fields left nil are not touched by Apply.
type EmployeePatch struct {
	FullName     *string    `json:"full_name,omitempty" validate:"omitempty,max=100"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	Salary       *float64   `json:"salary,omitempty"`
	Rate         *float64   `json:"rate,omitempty"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,max=20"`
	PhoneNumber  *string    `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Email        *string    `json:"email,omitempty" validate:"omitempty,max=100"`
	DepartmentID *int64     `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	PositionID   *int64     `json:"position_id,omitempty" validate:"omitempty,gt=0"`
}

// IsEmpty reports whether the patch changes nothing.
func (p EmployeePatch) IsEmpty() bool {
	return p.FullName == nil &&
		p.BirthDate == nil &&
		p.StartDate == nil &&
		p.Salary == nil &&
		p.Rate == nil &&
		p.Status == nil &&
		p.PhoneNumber == nil &&
		p.Email == nil &&
		p.DepartmentID == nil &&
		p.PositionID == nil
}

// Apply overwrites the attributes of e that are present in the patch.
func (p EmployeePatch) Apply(e *Employee) {
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.BirthDate != nil {
		e.BirthDate = *p.BirthDate
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.Rate != nil {
		e.Rate = *p.Rate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.PhoneNumber != nil {
		e.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.DepartmentID != nil {
		e.DepartmentID = *p.DepartmentID
	}
	if p.PositionID != nil {
		e.PositionID = *p.PositionID
	}
}

// EmployeeFilter holds the optional predicates of an employee listing.
// Nil predicates are omitted from the query.
type EmployeeFilter struct {
	NameSubstring *string
	MinSalary     *float64
	MaxSalary     *float64
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	DepartmentID  *int64

	Skip  int
	Limit int
}
