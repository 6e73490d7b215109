package controllers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/models/dto"
	"github.com/yigit/workload/internal/app/workload"
	"github.com/yigit/workload/internal/pkg/apperrors"
)

// WorkloadService is the behaviour the workload endpoints need
type WorkloadService interface {
	CalculateHours(atom models.PedagogicalAtom, targetCapacity int) (workload.HoursBreakdown, error)
	ValidateAssignment(module *models.Module, atom *models.PedagogicalAtom, section *models.Section, targetType models.TargetType, targetID *int64) (workload.Verdict, error)
	CheckAssignment(ctx context.Context, req dto.CheckAssignmentRequest) (workload.Verdict, error)
	CreateAssignment(ctx context.Context, teacherID int64, req dto.CreateAssignmentRequest) (*models.WorkloadAssignment, *models.TeacherWorkload, error)
	ConfirmAssignment(ctx context.Context, teacherID int64, assignmentID uuid.UUID) (*models.WorkloadAssignment, *models.TeacherWorkload, error)
	DeleteAssignment(ctx context.Context, teacherID int64, assignmentID uuid.UUID) (*models.TeacherWorkload, error)
	GetTeacherWorkload(ctx context.Context, teacherID int64, academicYear string, semester models.Semester) (*models.TeacherWorkload, error)
	ListWorkloads(ctx context.Context, academicYear string, semester models.Semester, status models.WorkloadStatus, page, size int) ([]*models.TeacherWorkload, int64, error)
}

// CatalogService is the behaviour the reference data endpoints need
type CatalogService interface {
	ListFormations(ctx context.Context, academicYear string) ([]*models.FormationOffer, error)
	ListModules(ctx context.Context, formationID int64) ([]*models.Module, error)
	GetModule(ctx context.Context, id int64) (*models.Module, error)
	ListSections(ctx context.Context, formationID int64) ([]*models.Section, error)
	GetSection(ctx context.Context, id int64) (*models.Section, error)
	ListTeachers(ctx context.Context, department string, role models.Role, page, size int) ([]*models.Teacher, int64, error)
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	Roles() []models.Role
}

// parseIDParam reads a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, name+" must be a positive integer")
	}
	return id, nil
}

// parseUUIDParam reads a UUID path parameter
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(name, name+" must be a UUID")
	}
	return id, nil
}
