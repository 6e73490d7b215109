package services

import (
	"context"

	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/repositories"
	"github.com/yigit/workload/internal/pkg/apperrors"
	"github.com/yigit/workload/internal/pkg/helpers"
)

// CatalogService gives read access to the reference data assignments point to
type CatalogService struct {
	formations repositories.FormationStore
	sections   repositories.SectionStore
	teachers   repositories.TeacherStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(formations repositories.FormationStore, sections repositories.SectionStore, teachers repositories.TeacherStore) *CatalogService {
	return &CatalogService{
		formations: formations,
		sections:   sections,
		teachers:   teachers,
	}
}

// ListFormations lists formation offers, optionally for one academic year
func (s *CatalogService) ListFormations(ctx context.Context, academicYear string) ([]*models.FormationOffer, error) {
	if academicYear != "" && !helpers.IsValidAcademicYear(academicYear) {
		return nil, apperrors.NewValidationError("year", "academic year must look like 2024-2025")
	}
	return s.formations.ListFormations(ctx, academicYear)
}

// ListModules lists the modules of an existing formation
func (s *CatalogService) ListModules(ctx context.Context, formationID int64) ([]*models.Module, error) {
	if _, err := s.formations.GetFormation(ctx, formationID); err != nil {
		return nil, err
	}
	return s.formations.ListModules(ctx, formationID)
}

// GetModule retrieves a module with its atoms
func (s *CatalogService) GetModule(ctx context.Context, id int64) (*models.Module, error) {
	return s.formations.GetModule(ctx, id)
}

// ListSections lists the sections of an existing formation
func (s *CatalogService) ListSections(ctx context.Context, formationID int64) ([]*models.Section, error) {
	if _, err := s.formations.GetFormation(ctx, formationID); err != nil {
		return nil, err
	}
	return s.sections.ListSections(ctx, formationID)
}

// GetSection retrieves a section with its groups
func (s *CatalogService) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	return s.sections.GetSection(ctx, id)
}

// ListTeachers returns a page of teachers
func (s *CatalogService) ListTeachers(ctx context.Context, department string, role models.Role, page, size int) ([]*models.Teacher, int64, error) {
	if role != "" && !role.IsValid() {
		return nil, 0, apperrors.NewValidationError("role", "unknown role")
	}
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.teachers.List(ctx, repositories.TeacherFilter{
		Department: department,
		Role:       role,
		Offset:     offset,
		Limit:      limit,
	})
}

// GetTeacher retrieves a teacher by ID
func (s *CatalogService) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teachers.GetByID(ctx, id)
}

// Roles returns every role in display order
func (s *CatalogService) Roles() []models.Role {
	return models.AllRoles()
}
