package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/helpers"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService services.EmployeeService
	pagination      Pagination
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService, pagination Pagination) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		pagination:      pagination,
	}
}

// ListEmployees returns the employees matching the query filters.
// Malformed filter values are ignored.
// @Summary List employees
// @Tags employees
// @Produce json
// @Param full_name query string false "Case-insensitive name substring"
// @Param min_salary query number false "Inclusive lower salary bound"
// @Param max_salary query number false "Inclusive upper salary bound"
// @Param start_date_from query string false "Inclusive start date lower bound (YYYY-MM-DD)"
// @Param start_date_to query string false "Inclusive start date upper bound (YYYY-MM-DD)"
// @Param department_id query int false "Department ID"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {object} dto.APIResponse{data=[]dto.EmployeeResponse}
// @Router /employees [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	filter := validation.ParseEmployeeFilter(middleware.QueryFields(ctx), c.pagination.DefaultLimit)
	filter.Skip, filter.Limit = c.pagination.clamp(filter.Skip, filter.Limit)

	employees, err := c.employeeService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	total, err := c.employeeService.Count(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewAPIResponse(dto.FromEmployees(employees)).
		WithPagination(helpers.NewPaginationInfo(total, filter.Skip, filter.Limit))
	ctx.JSON(http.StatusOK, resp)
}

// GetEmployee retrieves an employee by ID
// @Summary Get employee details
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse}
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Router /employees/{id} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	id, ok := parseID(ctx, "Employee")
	if !ok {
		return
	}

	employee, err := c.employeeService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromEmployee(employee)))
}

// CreateEmployee handles employee creation
// @Summary Create a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "Unknown department or position"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	fields, err := middleware.BindFields(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	employee, err := c.employeeService.Create(ctx.Request.Context(), fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromEmployee(employee)))
}

// UpdateEmployee applies a partial update
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 422 {object} dto.ErrorResponse "Unknown department or position"
// @Router /employees/{id} [patch]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseID(ctx, "Employee")
	if !ok {
		return
	}

	fields, err := middleware.BindFields(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	employee, err := c.employeeService.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromEmployee(employee)))
}

// DeleteEmployee removes an employee
// @Summary Delete an employee
// @Tags employees
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=DeleteResult}
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Router /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseID(ctx, "Employee")
	if !ok {
		return
	}

	deleted, err := c.employeeService.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		middleware.HandleAPIError(ctx, apperrors.ErrEmployeeNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(DeleteResult{Deleted: true}))
}
