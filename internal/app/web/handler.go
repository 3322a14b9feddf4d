// Package web serves the server-rendered HTML pages of the personnel service.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/pkg/metrics"
	"github.com/yigit/personnel/internal/pkg/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format(validation.DateLayout) },
	}).ParseFS(templateFS, "templates/*.html"))
}

// Config sizes the listing pages
type Config struct {
	PageSize int
	MaxLimit int
}

// Handler renders the HTML pages
type Handler struct {
	employees   services.EmployeeService
	departments services.DepartmentService
	positions   services.PositionService
	cfg         Config
	metrics     *metrics.Metrics
}

// NewHandler creates the page handler
func NewHandler(svcs *services.Services, cfg Config, m *metrics.Metrics) *Handler {
	return &Handler{
		employees:   svcs.EmployeeService,
		departments: svcs.DepartmentService,
		positions:   svcs.PositionService,
		cfg:         cfg,
		metrics:     m,
	}
}

// RegisterRoutes mounts every page on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.ListEmployees)
	r.GET("/employees/create", h.NewEmployee)
	r.GET("/employees/export", h.ExportEmployees)
	r.POST("/employees", h.CreateEmployee)
	r.GET("/employees/:id", h.ShowEmployee)
	r.GET("/employees/:id/edit", h.EditEmployee)
	r.POST("/employees/:id/update", h.UpdateEmployee)
	r.POST("/employees/:id/delete", h.DeleteEmployee)

	h.catalogRoutes(r, departmentCatalog(h.departments))
	h.catalogRoutes(r, positionCatalog(h.positions))
}

// pathID reads :id; malformed ids are reported as missing records.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// renderError shows the error page with the status mapped from err.
func (h *Handler) renderError(c *gin.Context, err error) {
	status, detail := middleware.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("Page failed")
	}

	title := http.StatusText(status)
	message := detail.Message
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		title = "Not found"
	}
	c.HTML(status, "error.html", gin.H{"Title": title, "Error": message})
}

// names loads every department and position as id => name lookups.
func (h *Handler) names(ctx context.Context) (departments []*models.Department, positions []*models.Position, err error) {
	departments, err = h.departments.List(ctx, 0, h.cfg.MaxLimit)
	if err != nil {
		return nil, nil, err
	}
	positions, err = h.positions.List(ctx, 0, h.cfg.MaxLimit)
	if err != nil {
		return nil, nil, err
	}
	return departments, positions, nil
}

func departmentNames(list []*models.Department) map[int64]string {
	out := make(map[int64]string, len(list))
	for _, d := range list {
		out[d.ID] = d.Name
	}
	return out
}

func positionNames(list []*models.Position) map[int64]string {
	out := make(map[int64]string, len(list))
	for _, p := range list {
		out[p.ID] = p.Name
	}
	return out
}
