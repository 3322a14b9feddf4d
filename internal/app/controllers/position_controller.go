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

// PositionController handles position-related operations
type PositionController struct {
	positionService services.PositionService
	pagination      Pagination
}

// NewPositionController creates a new PositionController
func NewPositionController(positionService services.PositionService, pagination Pagination) *PositionController {
	return &PositionController{
		positionService: positionService,
		pagination:      pagination,
	}
}

// ListPositions returns one window of positions
// @Summary List positions
// @Tags positions
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {object} dto.APIResponse{data=[]dto.PositionResponse}
// @Router /positions [get]
func (c *PositionController) ListPositions(ctx *gin.Context) {
	skip, limit := validation.ParseSkipLimit(middleware.QueryFields(ctx), c.pagination.DefaultLimit)
	skip, limit = c.pagination.clamp(skip, limit)

	positions, err := c.positionService.List(ctx.Request.Context(), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromPositions(positions)))
}

// GetPosition retrieves a position by ID
// @Summary Get position details
// @Tags positions
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} dto.APIResponse{data=dto.PositionResponse}
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Router /positions/{id} [get]
func (c *PositionController) GetPosition(ctx *gin.Context) {
	id, ok := parseID(ctx, "Position")
	if !ok {
		return
	}

	position, err := c.positionService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromPosition(position)))
}

// CreatePosition handles position creation
// @Summary Create a new position
// @Tags positions
// @Accept json
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.PositionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Position already exists"
// @Router /positions [post]
func (c *PositionController) CreatePosition(ctx *gin.Context) {
	fields, err := middleware.BindFields(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	position, err := c.positionService.Create(ctx.Request.Context(), fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromPosition(position)))
}

// UpdatePosition renames a position
// @Summary Update a position
// @Tags positions
// @Accept json
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} dto.APIResponse{data=dto.PositionResponse}
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Router /positions/{id} [patch]
func (c *PositionController) UpdatePosition(ctx *gin.Context) {
	id, ok := parseID(ctx, "Position")
	if !ok {
		return
	}

	fields, err := middleware.BindFields(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	position, err := c.positionService.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromPosition(position)))
}

// DeletePosition removes a position that no employee references
// @Summary Delete a position
// @Tags positions
// @Param id path int true "Position ID"
// @Success 200 {object} dto.APIResponse{data=DeleteResult}
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Failure 409 {object} dto.ErrorResponse "Position has employees"
// @Router /positions/{id} [delete]
func (c *PositionController) DeletePosition(ctx *gin.Context) {
	id, ok := parseID(ctx, "Position")
	if !ok {
		return
	}

	deleted, err := c.positionService.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		middleware.HandleAPIError(ctx, apperrors.ErrPositionNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(DeleteResult{Deleted: true}))
}
