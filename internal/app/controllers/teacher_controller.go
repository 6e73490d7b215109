package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/models/dto"
	"github.com/yigit/workload/internal/middleware"
	"github.com/yigit/workload/internal/pkg/helpers"
)

// TeacherController serves teachers and roles
type TeacherController struct {
	catalogService CatalogService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(catalogService CatalogService) *TeacherController {
	return &TeacherController{catalogService: catalogService}
}

// ListTeachers returns a page of teachers
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Param department query string false "Department"
// @Param role query string false "Role" Enums(ADMIN, HEAD_OF_DEPARTMENT, TEACHER, HR_OFFICER, RECORDS_AGENT)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.TeacherListResponse} "Teachers"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	teachers, total, err := c.catalogService.ListTeachers(ctx, ctx.Query("department"), models.Role(ctx.Query("role")), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.TeacherListResponse{
		Teachers:   make([]dto.TeacherResponse, 0, len(teachers)),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	for _, t := range teachers {
		resp.Teachers = append(resp.Teachers, dto.FromTeacher(t))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetTeacher returns a teacher
// @Summary Get teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	teacher, err := c.catalogService.GetTeacher(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromTeacher(teacher)))
}

// ListRoles returns every role with its display label
// @Summary List roles
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.RoleResponse} "Roles"
// @Router /roles [get]
func (c *TeacherController) ListRoles(ctx *gin.Context) {
	roles := c.catalogService.Roles()
	resp := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, dto.RoleResponse{Role: string(r), Label: r.Label()})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
