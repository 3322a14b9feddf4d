package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/helpers"
	pkgvalidation "github.com/yigit/personnel/internal/pkg/validation"
)

var filterKeys = []string{
	validation.FilterFullName,
	validation.FilterMinSalary,
	validation.FilterMaxSalary,
	validation.FilterStartDateFrom,
	validation.FilterStartDateTo,
	validation.FilterDepartmentID,
}

// filterQuery re-encodes the filter inputs without the paging window.
func filterQuery(fields validation.Fields) template.URL {
	q := url.Values{}
	for _, key := range filterKeys {
		if v, ok := fields.Get(key); ok {
			q.Set(key, v)
		}
	}
	return template.URL(q.Encode())
}

// employeeValues turns a stored employee back into form values.
func employeeValues(e *models.Employee) validation.Fields {
	return validation.Fields{
		"full_name":     e.FullName,
		"birth_date":    e.BirthDate.Format(pkgvalidation.DateLayout),
		"start_date":    e.StartDate.Format(pkgvalidation.DateLayout),
		"salary":        strconv.FormatFloat(e.Salary, 'f', -1, 64),
		"rate":          strconv.FormatFloat(e.Rate, 'f', -1, 64),
		"status":        e.Status,
		"phone_number":  e.PhoneNumber,
		"email":         e.Email,
		"department_id": strconv.FormatInt(e.DepartmentID, 10),
		"position_id":   strconv.FormatInt(e.PositionID, 10),
	}
}

// isInputError reports errors caused by what the user typed.
func isInputError(err error) bool {
	var fieldErr *validation.FieldError
	var refErr *apperrors.ReferentialError
	return errors.As(err, &fieldErr) || errors.As(err, &refErr) || errors.Is(err, apperrors.ErrBadRequest)
}

// ListEmployees renders the filtered, paginated employee list.
func (h *Handler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()
	fields := middleware.QueryFields(c)

	filter := validation.ParseEmployeeFilter(fields, h.cfg.PageSize)
	filter.Skip, filter.Limit = helpers.ClampWindow(filter.Skip, filter.Limit, h.cfg.PageSize, h.cfg.MaxLimit)

	employees, err := h.employees.List(ctx, filter)
	if err != nil {
		h.renderError(c, err)
		return
	}
	total, err := h.employees.Count(ctx, filter)
	if err != nil {
		h.renderError(c, err)
		return
	}
	departments, positions, err := h.names(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "employees.html", gin.H{
		"Title":           "Employees",
		"Employees":       employees,
		"Filter":          fields,
		"Query":           filterQuery(fields),
		"Departments":     departments,
		"DepartmentNames": departmentNames(departments),
		"PositionNames":   positionNames(positions),
		"Pagination":      helpers.NewPaginationInfo(total, filter.Skip, filter.Limit),
	})
}

// renderEmployeeForm shows the create or edit form with values.
func (h *Handler) renderEmployeeForm(c *gin.Context, status int, title, action string, values validation.Fields, message string) {
	departments, positions, err := h.names(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(status, "employee_form.html", gin.H{
		"Title":       title,
		"Action":      action,
		"Values":      values,
		"Departments": departments,
		"Positions":   positions,
		"Error":       message,
	})
}

// NewEmployee renders an empty employee form.
func (h *Handler) NewEmployee(c *gin.Context) {
	h.renderEmployeeForm(c, http.StatusOK, "New employee", "/employees", validation.Fields{}, "")
}

// CreateEmployee stores the submitted employee and redirects to the list.
func (h *Handler) CreateEmployee(c *gin.Context) {
	fields, err := middleware.BindFields(c)
	if err == nil {
		_, err = h.employees.Create(c.Request.Context(), fields)
	}

	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/")
	case isInputError(err):
		h.renderEmployeeForm(c, http.StatusBadRequest, "New employee", "/employees", fields, err.Error())
	default:
		h.renderError(c, err)
	}
}

// ShowEmployee renders one employee.
func (h *Handler) ShowEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.renderError(c, apperrors.ErrEmployeeNotFound)
		return
	}

	ctx := c.Request.Context()
	employee, err := h.employees.Get(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	departments, positions, err := h.names(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "employee_detail.html", gin.H{
		"Title":      employee.FullName,
		"Employee":   employee,
		"Department": departmentNames(departments)[employee.DepartmentID],
		"Position":   positionNames(positions)[employee.PositionID],
	})
}

// EditEmployee renders the form pre-filled with the stored values.
func (h *Handler) EditEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.renderError(c, apperrors.ErrEmployeeNotFound)
		return
	}

	employee, err := h.employees.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	action := fmt.Sprintf("/employees/%d/update", id)
	h.renderEmployeeForm(c, http.StatusOK, "Edit employee", action, employeeValues(employee), "")
}

// UpdateEmployee applies the submitted fields and shows the employee.
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.renderError(c, apperrors.ErrEmployeeNotFound)
		return
	}

	fields, err := middleware.BindFields(c)
	if err == nil {
		_, err = h.employees.Update(c.Request.Context(), id, fields)
	}

	action := fmt.Sprintf("/employees/%d/update", id)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/employees/%d", id))
	case isInputError(err):
		h.renderEmployeeForm(c, http.StatusBadRequest, "Edit employee", action, fields, err.Error())
	default:
		h.renderError(c, err)
	}
}

// DeleteEmployee removes the employee and returns to the list.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if ok {
		if _, err := h.employees.Delete(c.Request.Context(), id); err != nil {
			h.renderError(c, err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}
