package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/models/dto"
	"github.com/yigit/workload/internal/app/workload"
	"github.com/yigit/workload/internal/middleware"
	"github.com/yigit/workload/internal/pkg/apperrors"
	"github.com/yigit/workload/internal/pkg/helpers"
)

// WorkloadController handles hour calculation, assignment checks and assignment changes
type WorkloadController struct {
	workloadService WorkloadService
	now             func() time.Time
}

// NewWorkloadController creates a new WorkloadController
func NewWorkloadController(workloadService WorkloadService) *WorkloadController {
	return &WorkloadController{
		workloadService: workloadService,
		now:             time.Now,
	}
}

// CalculateHours computes the hour cost of an atom for an audience
// @Summary Calculate atom hours
// @Description Computes weekly hours, term hours and parallel groups for teaching an atom to an audience of the given size
// @Tags workload
// @Accept json
// @Produce json
// @Param request body dto.CalculateHoursRequest true "Atom and audience size"
// @Success 200 {object} dto.APIResponse{data=dto.HoursResponse} "Hours calculated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Atom data is inconsistent"
// @Router /workload/calculate-hours [post]
func (c *WorkloadController) CalculateHours(ctx *gin.Context) {
	var req dto.CalculateHoursRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	breakdown, err := c.workloadService.CalculateHours(req.Atom.ToModel(), req.TargetCapacity)
	if err != nil {
		if errors.Is(err, apperrors.ErrDataIntegrity) && breakdown.TotalWeeks > 0 {
			status, detail := middleware.ErrorDetailFor(err)
			detail.WithDetails(gin.H{"atomId": req.Atom.ID, "breakdown": hoursResponse(breakdown)})
			ctx.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hoursResponse(breakdown)))
}

// ValidateAssignment checks a proposed assignment described by full objects
// @Summary Validate an assignment
// @Description Applies the allocation rules in order and reports the first one that fails. A refused assignment is a 200 response with valid=false.
// @Tags workload
// @Accept json
// @Produce json
// @Param request body dto.ValidateAssignmentRequest true "Module, atom, section and target"
// @Success 200 {object} dto.APIResponse{data=dto.VerdictResponse} "Verdict"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Reference data is inconsistent"
// @Router /workload/validate-assignment [post]
func (c *WorkloadController) ValidateAssignment(ctx *gin.Context) {
	var req dto.ValidateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	atom := req.Atom.ToModel()
	verdict, err := c.workloadService.ValidateAssignment(
		req.Module.ToModel(), &atom, req.Section.ToModel(), models.TargetType(req.TargetType), req.TargetID,
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(verdictResponse(verdict)))
}

// CheckAssignment checks a proposed assignment referenced by IDs
// @Summary Check an assignment by IDs
// @Description Loads the module, atom and section and applies the allocation rules
// @Tags workload
// @Accept json
// @Produce json
// @Param request body dto.CheckAssignmentRequest true "Module, atom, section and target IDs"
// @Success 200 {object} dto.APIResponse{data=dto.VerdictResponse} "Verdict"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Module, atom or section not found"
// @Failure 409 {object} dto.ErrorResponse "Reference data is inconsistent"
// @Router /workload/check-assignment [post]
func (c *WorkloadController) CheckAssignment(ctx *gin.Context) {
	var req dto.CheckAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	verdict, err := c.workloadService.CheckAssignment(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(verdictResponse(verdict)))
}

// ListWorkloads returns the department overview for a term
// @Summary List teacher workloads
// @Description Lists stored teacher workloads for a term, heaviest first
// @Tags workload
// @Produce json
// @Param year query string false "Academic year, defaults to the current one" example(2024-2025)
// @Param semester query string false "Semester" Enums(S1, S2)
// @Param status query string false "Workload status" Enums(normal, overload, underload)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.WorkloadListResponse} "Workloads"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workload [get]
func (c *WorkloadController) ListWorkloads(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	year := ctx.DefaultQuery("year", helpers.AcademicYearOf(c.now()))

	list, total, err := c.workloadService.ListWorkloads(ctx, year,
		models.Semester(ctx.Query("semester")), models.WorkloadStatus(ctx.Query("status")), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.WorkloadListResponse{
		Workloads:  make([]dto.WorkloadResponse, 0, len(list)),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	for _, w := range list {
		resp.Workloads = append(resp.Workloads, dto.FromWorkload(w))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetTeacherWorkload returns one teacher's workload for a term
// @Summary Get a teacher's workload
// @Description Recomputes the teacher's total, status and overload from the stored assignments
// @Tags workload
// @Produce json
// @Param teacherId path int true "Teacher ID" Format(int64) minimum(1)
// @Param year query string false "Academic year, defaults to the current one" example(2024-2025)
// @Param semester query string false "Semester" Enums(S1, S2) default(S1)
// @Success 200 {object} dto.APIResponse{data=dto.WorkloadResponse} "Workload"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /workload/{teacherId} [get]
func (c *WorkloadController) GetTeacherWorkload(ctx *gin.Context) {
	teacherID, err := parseIDParam(ctx, "teacherId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	year := ctx.DefaultQuery("year", helpers.AcademicYearOf(c.now()))
	semester := models.Semester(ctx.DefaultQuery("semester", string(models.SemesterOne)))

	w, err := c.workloadService.GetTeacherWorkload(ctx, teacherID, year, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromWorkload(w)))
}

// CreateAssignment assigns an atom to a teacher
// @Summary Create an assignment
// @Description Validates the assignment, computes its hours and recomputes the teacher's workload
// @Tags workload
// @Accept json
// @Produce json
// @Param teacherId path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=dto.AssignmentChangeResponse} "Assignment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Teacher, module, atom or section not found"
// @Failure 409 {object} dto.ErrorResponse "Reference data is inconsistent"
// @Failure 422 {object} dto.ErrorResponse "Assignment refused by an allocation rule"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workload/{teacherId}/assignments [post]
func (c *WorkloadController) CreateAssignment(ctx *gin.Context) {
	teacherID, err := parseIDParam(ctx, "teacherId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	a, w, err := c.workloadService.CreateAssignment(ctx, teacherID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.FromAssignment(a)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.AssignmentChangeResponse{
		Assignment: &resp,
		Workload:   dto.FromWorkload(w),
	}))
}

// ConfirmAssignment confirms an assignment
// @Summary Confirm an assignment
// @Description Marks the assignment confirmed; confirming twice has no further effect
// @Tags workload
// @Produce json
// @Param teacherId path int true "Teacher ID" Format(int64) minimum(1)
// @Param assignmentId path string true "Assignment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentChangeResponse} "Assignment confirmed"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher or assignment not found"
// @Router /workload/{teacherId}/assignments/{assignmentId}/confirm [post]
func (c *WorkloadController) ConfirmAssignment(ctx *gin.Context) {
	teacherID, err := parseIDParam(ctx, "teacherId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	assignmentID, err := parseUUIDParam(ctx, "assignmentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	a, w, err := c.workloadService.ConfirmAssignment(ctx, teacherID, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.FromAssignment(a)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AssignmentChangeResponse{
		Assignment: &resp,
		Workload:   dto.FromWorkload(w),
	}))
}

// DeleteAssignment removes an unconfirmed assignment
// @Summary Delete an assignment
// @Description Deletes an unconfirmed assignment and returns the recomputed workload
// @Tags workload
// @Produce json
// @Param teacherId path int true "Teacher ID" Format(int64) minimum(1)
// @Param assignmentId path string true "Assignment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentChangeResponse} "Assignment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher or assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Assignment is confirmed"
// @Router /workload/{teacherId}/assignments/{assignmentId} [delete]
func (c *WorkloadController) DeleteAssignment(ctx *gin.Context) {
	teacherID, err := parseIDParam(ctx, "teacherId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	assignmentID, err := parseUUIDParam(ctx, "assignmentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	w, err := c.workloadService.DeleteAssignment(ctx, teacherID, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AssignmentChangeResponse{Workload: dto.FromWorkload(w)}))
}

func hoursResponse(b workload.HoursBreakdown) dto.HoursResponse {
	return dto.HoursResponse{
		HoursPerWeek: b.HoursPerWeek,
		TotalWeeks:   b.TotalWeeks,
		TotalHours:   b.TotalHours,
		GroupsNeeded: b.GroupsNeeded,
	}
}

func verdictResponse(v workload.Verdict) dto.VerdictResponse {
	return dto.VerdictResponse{
		Valid:   v.Valid,
		Rule:    string(v.Rule),
		Message: v.Message,
	}
}
