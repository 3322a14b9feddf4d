package dto

import (
	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/pkg/validation"
)

// EmployeeResponse represents an employee with calendar dates as YYYY-MM-DD
type EmployeeResponse struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"full_name"`
	BirthDate    string  `json:"birth_date"`
	StartDate    string  `json:"start_date"`
	Salary       float64 `json:"salary"`
	Rate         float64 `json:"rate"`
	Status       string  `json:"status"`
	PhoneNumber  string  `json:"phone_number"`
	Email        string  `json:"email"`
	DepartmentID int64   `json:"department_id"`
	PositionID   int64   `json:"position_id"`
}

// FromEmployee converts an employee model to its response
func FromEmployee(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		BirthDate:    e.BirthDate.Format(validation.DateLayout),
		StartDate:    e.StartDate.Format(validation.DateLayout),
		Salary:       e.Salary,
		Rate:         e.Rate,
		Status:       e.Status,
		PhoneNumber:  e.PhoneNumber,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		PositionID:   e.PositionID,
	}
}

// FromEmployees converts an employee list, never returning nil
func FromEmployees(list []*models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEmployee(e))
	}
	return out
}
