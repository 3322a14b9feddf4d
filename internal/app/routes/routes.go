package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/personnel/internal/app/controllers"
	"github.com/yigit/personnel/internal/app/web"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	pages *web.Handler,
	health http.Handler,
	registry *prometheus.Registry,
) {
	// Server-rendered pages
	pages.RegisterRoutes(router)

	// API version group
	v1 := router.Group("/api/v1")

	employees := v1.Group("/employees")
	{
		employees.GET("", ctrls.EmployeeController.ListEmployees)
		employees.POST("", ctrls.EmployeeController.CreateEmployee)
		employees.GET("/:id", ctrls.EmployeeController.GetEmployee)
		employees.PATCH("/:id", ctrls.EmployeeController.UpdateEmployee)
		employees.DELETE("/:id", ctrls.EmployeeController.DeleteEmployee)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", ctrls.DepartmentController.ListDepartments)
		departments.POST("", ctrls.DepartmentController.CreateDepartment)
		departments.GET("/:id", ctrls.DepartmentController.GetDepartment)
		departments.PATCH("/:id", ctrls.DepartmentController.UpdateDepartment)
		departments.DELETE("/:id", ctrls.DepartmentController.DeleteDepartment)
	}

	positions := v1.Group("/positions")
	{
		positions.GET("", ctrls.PositionController.ListPositions)
		positions.POST("", ctrls.PositionController.CreatePosition)
		positions.GET("/:id", ctrls.PositionController.GetPosition)
		positions.PATCH("/:id", ctrls.PositionController.UpdatePosition)
		positions.DELETE("/:id", ctrls.PositionController.DeletePosition)
	}

	v1.GET("/health", gin.WrapH(health))

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
