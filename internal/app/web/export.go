package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/report"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/logger"
)

// collect pages through every employee matching filter. The store may
// return shorter pages than asked for, so only an empty page ends the walk.
func (h *Handler) collect(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	filter.Skip, filter.Limit = 0, h.cfg.MaxLimit

	var all []*models.Employee
	for {
		page, err := h.employees.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return all, nil
		}
		all = append(all, page...)
		filter.Skip += len(page)
	}
}

// ExportEmployees streams the filtered employee list as an .xlsx workbook.
// The paging window of the list page is ignored.
func (h *Handler) ExportEmployees(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	filter := validation.ParseEmployeeFilter(middleware.QueryFields(c), h.cfg.MaxLimit)
	employees, err := h.collect(ctx, filter)
	if err != nil {
		h.renderError(c, err)
		return
	}
	departments, positions, err := h.names(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	buffer, err := report.EmployeeWorkbook(employees, report.Lookup{
		Departments: departmentNames(departments),
		Positions:   positionNames(positions),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.metrics.ObserveExport(start)
	logger.Ctx(ctx).Info().Int("rows", len(employees)).Msg("Employee export generated")

	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, report.ContentType, buffer.Bytes())
}
