package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/pkg/helpers"
)

// Pagination bounds the skip/limit windows accepted by list endpoints
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

func (p Pagination) clamp(skip, limit int) (int, int) {
	return helpers.ClampWindow(skip, limit, p.DefaultLimit, p.MaxLimit)
}

// Controllers groups the JSON API handlers
type Controllers struct {
	DepartmentController *DepartmentController
	PositionController   *PositionController
	EmployeeController   *EmployeeController
}

// NewControllers builds every controller over the same services
func NewControllers(svcs *services.Services, pagination Pagination) *Controllers {
	return &Controllers{
		DepartmentController: NewDepartmentController(svcs.DepartmentService, pagination),
		PositionController:   NewPositionController(svcs.PositionService, pagination),
		EmployeeController:   NewEmployeeController(svcs.EmployeeService, pagination),
	}
}

// parseID reads the :id path parameter. On failure it writes a 400 response
// and returns false.
func parseID(ctx *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+entity+" ID").
			WithField("id").
			WithDetails(entity + " ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// DeleteResult is returned by every delete endpoint
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}
