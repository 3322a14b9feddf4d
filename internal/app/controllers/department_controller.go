package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/apperrors"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
	pagination        Pagination
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService, pagination Pagination) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		pagination:        pagination,
	}
}

// ListDepartments returns one window of departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentResponse}
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	skip, limit := validation.ParseSkipLimit(middleware.QueryFields(ctx), c.pagination.DefaultLimit)
	skip, limit = c.pagination.clamp(skip, limit)

	departments, err := c.departmentService.List(ctx.Request.Context(), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromDepartments(departments)))
}

// GetDepartment retrieves a department by ID
// @Summary Get department details
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartment(ctx *gin.Context) {
	id, ok := parseID(ctx, "Department")
	if !ok {
		return
	}

	department, err := c.departmentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromDepartment(department)))
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Tags departments
// @Accept json
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Department already exists"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	fields, err := middleware.BindFields(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department, err := c.departmentService.Create(ctx.Request.Context(), fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromDepartment(department)))
}

// UpdateDepartment renames a department
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [patch]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseID(ctx, "Department")
	if !ok {
		return
	}

	fields, err := middleware.BindFields(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department, err := c.departmentService.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromDepartment(department)))
}

// DeleteDepartment removes a department that no employee references
// @Summary Delete a department
// @Tags departments
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=DeleteResult}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Department has employees"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseID(ctx, "Department")
	if !ok {
		return
	}

	deleted, err := c.departmentService.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		middleware.HandleAPIError(ctx, apperrors.ErrDepartmentNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(DeleteResult{Deleted: true}))
}
