package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrBadRequest       = errors.New("bad request")
)

// Department Errors
var (
	ErrDepartmentNotFound      = fmt.Errorf("department %w", ErrResourceNotFound)
	ErrDepartmentAlreadyExists = fmt.Errorf("department with this name %w", ErrResourceAlreadyExists)
	ErrDepartmentHasEmployees  = fmt.Errorf("%w: department has employees and cannot be deleted", ErrConflict)
)

// Position Errors
var (
	ErrPositionNotFound      = fmt.Errorf("position %w", ErrResourceNotFound)
	ErrPositionAlreadyExists = fmt.Errorf("position with this name %w", ErrResourceAlreadyExists)
	ErrPositionHasEmployees  = fmt.Errorf("%w: position has employees and cannot be deleted", ErrConflict)
)

// Employee Errors
var (
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrResourceNotFound)
)

// ReferentialError reports a well-typed foreign key that points at no row.
type ReferentialError struct {
	Field string
	ID    int64
}

// Error implements error interface
func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s: %s %d does not exist", ErrInvalidReference, e.Field, e.ID)
}

// Unwrap implements errors.Unwrap interface
func (e *ReferentialError) Unwrap() error {
	return ErrInvalidReference
}

// NewReferentialError creates a ReferentialError for field pointing at id.
func NewReferentialError(field string, id int64) *ReferentialError {
	return &ReferentialError{Field: field, ID: id}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
