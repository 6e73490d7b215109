package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/workload/internal/app/controllers"
	"github.com/yigit/workload/internal/app/models/dto"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Workload *controllers.WorkloadController
	Catalog  *controllers.CatalogController
	Teacher  *controllers.TeacherController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "pong"}))
	})

	// Stateless rule endpoints
	wl := v1.Group("/workload")
	{
		wl.POST("/calculate-hours", ctrl.Workload.CalculateHours)
		wl.POST("/validate-assignment", ctrl.Workload.ValidateAssignment)
		wl.POST("/check-assignment", ctrl.Workload.CheckAssignment)

		wl.GET("", ctrl.Workload.ListWorkloads)
		wl.GET("/:teacherId", ctrl.Workload.GetTeacherWorkload)
		wl.POST("/:teacherId/assignments", ctrl.Workload.CreateAssignment)
		wl.POST("/:teacherId/assignments/:assignmentId/confirm", ctrl.Workload.ConfirmAssignment)
		wl.DELETE("/:teacherId/assignments/:assignmentId", ctrl.Workload.DeleteAssignment)
	}

	formations := v1.Group("/formations")
	{
		formations.GET("", ctrl.Catalog.ListFormations)
		formations.GET("/:id/modules", ctrl.Catalog.ListModules)
		formations.GET("/:id/sections", ctrl.Catalog.ListSections)
	}
	v1.GET("/modules/:id", ctrl.Catalog.GetModule)
	v1.GET("/sections/:id", ctrl.Catalog.GetSection)

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", ctrl.Teacher.ListTeachers)
		teachers.GET("/:id", ctrl.Teacher.GetTeacher)
	}
	v1.GET("/roles", ctrl.Teacher.ListRoles)
}
