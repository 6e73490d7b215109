package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/models/dto"
	"github.com/yigit/workload/internal/app/repositories"
	"github.com/yigit/workload/internal/app/workload"
	"github.com/yigit/workload/internal/pkg/apperrors"
	"github.com/yigit/workload/internal/pkg/helpers"
)

// WorkloadService handles hour calculation, assignment validation and the
// assignment lifecycle. Every change to a teacher's assignments recomputes the
// teacher's aggregate for the term in the same transaction.
type WorkloadService struct {
	formations  repositories.FormationStore
	sections    repositories.SectionStore
	teachers    repositories.TeacherStore
	assignments repositories.AssignmentStore
	policy      workload.Policy
	logger      zerolog.Logger
	now         func() time.Time
}

// NewWorkloadService creates a new workload service instance
func NewWorkloadService(
	formations repositories.FormationStore,
	sections repositories.SectionStore,
	teachers repositories.TeacherStore,
	assignments repositories.AssignmentStore,
	policy workload.Policy,
	logger zerolog.Logger,
) *WorkloadService {
	return &WorkloadService{
		formations:  formations,
		sections:    sections,
		teachers:    teachers,
		assignments: assignments,
		policy:      policy,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Policy returns the thresholds the service applies
func (s *WorkloadService) Policy() workload.Policy {
	return s.policy
}

// CalculateHours returns the hour cost of atom for an audience of targetCapacity students
func (s *WorkloadService) CalculateHours(atom models.PedagogicalAtom, targetCapacity int) (workload.HoursBreakdown, error) {
	breakdown, err := workload.CalculateAtomHours(atom, targetCapacity)
	if err != nil && errors.Is(err, apperrors.ErrDataIntegrity) {
		s.logger.Warn().Err(err).Int64("atomId", atom.ID).Msg("Hour calculation hit inconsistent atom data")
	}
	return breakdown, err
}

// ValidateAssignment checks a proposed assignment described by full objects
func (s *WorkloadService) ValidateAssignment(module *models.Module, atom *models.PedagogicalAtom, section *models.Section, targetType models.TargetType, targetID *int64) (workload.Verdict, error) {
	verdict, err := s.policy.ValidateAssignment(module, atom, section, targetType, targetID)
	if err != nil && errors.Is(err, apperrors.ErrDataIntegrity) {
		s.logger.Warn().Err(err).Msg("Assignment validation hit inconsistent reference data")
	}
	return verdict, err
}

// assignmentRefs are the reference records an assignment points to
type assignmentRefs struct {
	module  *models.Module
	atom    *models.PedagogicalAtom
	section *models.Section
}

func (s *WorkloadService) loadRefs(ctx context.Context, req dto.CheckAssignmentRequest) (*assignmentRefs, error) {
	module, err := s.formations.GetModule(ctx, req.ModuleID)
	if err != nil {
		return nil, err
	}
	atom, err := s.formations.GetAtom(ctx, req.AtomID)
	if err != nil {
		return nil, err
	}
	section, err := s.sections.GetSection(ctx, req.SectionID)
	if err != nil {
		return nil, err
	}
	if section.FormationID != module.FormationID {
		return nil, apperrors.NewValidationError("sectionId", fmt.Sprintf(
			"section %d does not belong to the formation of module %s", section.ID, module.Code))
	}
	return &assignmentRefs{module: module, atom: atom, section: section}, nil
}

// CheckAssignment loads the referenced module, atom and section and validates the assignment
func (s *WorkloadService) CheckAssignment(ctx context.Context, req dto.CheckAssignmentRequest) (workload.Verdict, error) {
	refs, err := s.loadRefs(ctx, req)
	if err != nil {
		return workload.Verdict{}, err
	}
	return s.ValidateAssignment(refs.module, refs.atom, refs.section, models.TargetType(req.TargetType), req.TargetID)
}

// checkTerm verifies that module is taught in the requested term: its semester
// must match and its formation must be offered in academicYear.
func (s *WorkloadService) checkTerm(ctx context.Context, module *models.Module, academicYear string, semester models.Semester) error {
	if module.Semester != semester {
		return apperrors.NewValidationError("semester", fmt.Sprintf(
			"module %s is taught in %s, not %s", module.Code, module.Semester, semester))
	}

	formation, err := s.formations.GetFormation(ctx, module.FormationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFormationNotFound) {
			return apperrors.NewDataIntegrityError(fmt.Sprintf(
				"module %s references missing formation %d", module.Code, module.FormationID)).
				WithDetail("moduleId", module.ID)
		}
		return err
	}
	if formation.AcademicYear != academicYear {
		return apperrors.NewValidationError("academicYear", fmt.Sprintf(
			"formation %s is offered in %s, not %s", formation.Code, formation.AcademicYear, academicYear))
	}
	return nil
}

// CreateAssignment validates and stores a new assignment for a teacher, then
// recomputes the teacher's workload for the term. A refused assignment is
// returned as an ErrRuleViolation error carrying the rule code.
func (s *WorkloadService) CreateAssignment(ctx context.Context, teacherID int64, req dto.CreateAssignmentRequest) (*models.WorkloadAssignment, *models.TeacherWorkload, error) {
	if !helpers.IsValidAcademicYear(req.AcademicYear) {
		return nil, nil, apperrors.NewValidationError("academicYear", "academic year must look like 2024-2025")
	}
	semester := models.Semester(req.Semester)
	if !semester.IsValid() {
		return nil, nil, apperrors.NewValidationError("semester", "semester must be S1 or S2")
	}
	targetType := models.TargetType(req.TargetType)

	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, nil, err
	}

	refs, err := s.loadRefs(ctx, req.CheckAssignmentRequest)
	if err != nil {
		return nil, nil, err
	}

	if err := s.checkTerm(ctx, refs.module, req.AcademicYear, semester); err != nil {
		return nil, nil, err
	}

	verdict, err := s.ValidateAssignment(refs.module, refs.atom, refs.section, targetType, req.TargetID)
	if err != nil {
		return nil, nil, err
	}
	if !verdict.Valid {
		s.logger.Info().
			Int64("teacherId", teacherID).
			Int64("atomId", refs.atom.ID).
			Str("rule", string(verdict.Rule)).
			Msg("Assignment refused")
		return nil, nil, verdict.Err()
	}

	capacity, err := workload.TargetCapacity(refs.section, targetType, req.TargetID)
	if err != nil {
		return nil, nil, err
	}
	breakdown, err := s.CalculateHours(*refs.atom, capacity)
	if err != nil {
		return nil, nil, err
	}

	assignment := &models.WorkloadAssignment{
		ID:           uuid.New(),
		TeacherID:    teacher.ID,
		ModuleID:     refs.module.ID,
		AtomID:       refs.atom.ID,
		AtomType:     refs.atom.Type,
		SectionID:    refs.section.ID,
		TargetType:   targetType,
		AcademicYear: req.AcademicYear,
		Semester:     semester,
		HoursPerWeek: breakdown.HoursPerWeek,
		TotalWeeks:   breakdown.TotalWeeks,
		TotalHours:   breakdown.TotalHours,
		GroupsNeeded: breakdown.GroupsNeeded,
		Coefficient:  refs.module.Coefficient,
		CreatedAt:    s.now(),
	}
	if targetType == models.TargetGroup {
		assignment.TargetID = req.TargetID
	}

	var summary *models.TeacherWorkload
	err = s.assignments.WithinTx(ctx, func(ctx context.Context, store repositories.AssignmentStore) error {
		if err := store.LockTeacher(ctx, teacher.ID); err != nil {
			return err
		}
		if err := store.Create(ctx, assignment); err != nil {
			return err
		}
		var err error
		summary, err = s.recompute(ctx, store, teacher, assignment.AcademicYear, assignment.Semester)
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error creating assignment: %w", err)
	}

	s.logger.Info().
		Int64("teacherId", teacher.ID).
		Str("assignmentId", assignment.ID.String()).
		Float64("totalHours", assignment.TotalHours).
		Msg("Assignment created")
	s.warnIfOverloaded(summary)
	return assignment, summary, nil
}

// ConfirmAssignment marks an assignment confirmed and recomputes the workload. Confirming twice is a no-op.
func (s *WorkloadService) ConfirmAssignment(ctx context.Context, teacherID int64, assignmentID uuid.UUID) (*models.WorkloadAssignment, *models.TeacherWorkload, error) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, nil, err
	}

	var (
		assignment *models.WorkloadAssignment
		summary    *models.TeacherWorkload
	)
	err = s.assignments.WithinTx(ctx, func(ctx context.Context, store repositories.AssignmentStore) error {
		if err := store.LockTeacher(ctx, teacher.ID); err != nil {
			return err
		}
		a, err := ownedAssignment(ctx, store, teacher.ID, assignmentID)
		if err != nil {
			return err
		}
		if !a.IsConfirmed {
			now := s.now()
			if err := store.Confirm(ctx, a.ID, now); err != nil {
				return err
			}
			a.IsConfirmed = true
			a.ConfirmedAt = &now
		}
		assignment = a
		summary, err = s.recompute(ctx, store, teacher, a.AcademicYear, a.Semester)
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error confirming assignment: %w", err)
	}

	s.logger.Info().Int64("teacherId", teacher.ID).Str("assignmentId", assignmentID.String()).Msg("Assignment confirmed")
	return assignment, summary, nil
}

// DeleteAssignment removes an unconfirmed assignment and recomputes the workload
func (s *WorkloadService) DeleteAssignment(ctx context.Context, teacherID int64, assignmentID uuid.UUID) (*models.TeacherWorkload, error) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	var summary *models.TeacherWorkload
	err = s.assignments.WithinTx(ctx, func(ctx context.Context, store repositories.AssignmentStore) error {
		if err := store.LockTeacher(ctx, teacher.ID); err != nil {
			return err
		}
		a, err := ownedAssignment(ctx, store, teacher.ID, assignmentID)
		if err != nil {
			return err
		}
		if a.IsConfirmed {
			return apperrors.NewCustomError(apperrors.ErrAssignmentLocked, "a confirmed assignment cannot be deleted")
		}
		if err := store.Delete(ctx, a.ID); err != nil {
			return err
		}
		summary, err = s.recompute(ctx, store, teacher, a.AcademicYear, a.Semester)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error deleting assignment: %w", err)
	}

	s.logger.Info().Int64("teacherId", teacher.ID).Str("assignmentId", assignmentID.String()).Msg("Assignment deleted")
	return summary, nil
}

// GetTeacherWorkload recomputes a teacher's workload for a term from the stored assignments.
// Nothing is written; the result includes the teacher and the assignment list, and
// carries the stored aggregate's update time. A stored aggregate that disagrees
// with the recomputation is logged.
func (s *WorkloadService) GetTeacherWorkload(ctx context.Context, teacherID int64, academicYear string, semester models.Semester) (*models.TeacherWorkload, error) {
	if !helpers.IsValidAcademicYear(academicYear) {
		return nil, apperrors.NewValidationError("year", "academic year must look like 2024-2025")
	}
	if !semester.IsValid() {
		return nil, apperrors.NewValidationError("semester", "semester must be S1 or S2")
	}

	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	list, err := s.assignments.ListByTeacher(ctx, teacher.ID, academicYear, semester)
	if err != nil {
		return nil, fmt.Errorf("error loading assignments: %w", err)
	}

	summary := s.policy.Summarize(teacher.ID, academicYear, semester, list, maxHoursOf(teacher))
	summary.Teacher = teacher

	stored, err := s.assignments.GetWorkload(ctx, teacher.ID, academicYear, semester)
	switch {
	case apperrors.IsNotFound(err):
	case err != nil:
		return nil, fmt.Errorf("error loading stored workload: %w", err)
	default:
		summary.UpdatedAt = stored.UpdatedAt
		if stored.TotalHours != summary.TotalHours || stored.AssignmentCount != summary.AssignmentCount || stored.Status != summary.Status {
			s.logger.Warn().
				Int64("teacherId", teacher.ID).
				Str("academicYear", academicYear).
				Str("semester", string(semester)).
				Float64("storedHours", stored.TotalHours).
				Float64("totalHours", summary.TotalHours).
				Msg("Stored workload is out of date")
		}
	}
	return summary, nil
}

// ListWorkloads returns a page of stored workloads for a term, heaviest first
func (s *WorkloadService) ListWorkloads(ctx context.Context, academicYear string, semester models.Semester, status models.WorkloadStatus, page, size int) ([]*models.TeacherWorkload, int64, error) {
	if academicYear != "" && !helpers.IsValidAcademicYear(academicYear) {
		return nil, 0, apperrors.NewValidationError("year", "academic year must look like 2024-2025")
	}
	if semester != "" && !semester.IsValid() {
		return nil, 0, apperrors.NewValidationError("semester", "semester must be S1 or S2")
	}
	switch status {
	case "", models.StatusNormal, models.StatusOverload, models.StatusUnderload:
	default:
		return nil, 0, apperrors.NewValidationError("status", "status must be normal, overload or underload")
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.assignments.ListWorkloads(ctx, repositories.WorkloadFilter{
		AcademicYear: academicYear,
		Semester:     semester,
		Status:       status,
		Offset:       offset,
		Limit:        limit,
	})
}

// recompute rebuilds and stores the teacher's aggregate from every assignment of the term
func (s *WorkloadService) recompute(ctx context.Context, store repositories.AssignmentStore, teacher *models.Teacher, academicYear string, semester models.Semester) (*models.TeacherWorkload, error) {
	list, err := store.ListByTeacher(ctx, teacher.ID, academicYear, semester)
	if err != nil {
		return nil, err
	}
	summary := s.policy.Summarize(teacher.ID, academicYear, semester, list, maxHoursOf(teacher))
	summary.UpdatedAt = s.now()
	if err := store.SaveWorkload(ctx, summary); err != nil {
		return nil, err
	}
	summary.Teacher = teacher
	return summary, nil
}

func (s *WorkloadService) warnIfOverloaded(summary *models.TeacherWorkload) {
	if summary == nil || summary.Status != models.StatusOverload {
		return
	}
	s.logger.Warn().
		Int64("teacherId", summary.TeacherID).
		Str("academicYear", summary.AcademicYear).
		Str("semester", string(summary.Semester)).
		Float64("totalHours", summary.TotalHours).
		Float64("maxHours", summary.MaxHours).
		Float64("overloadHours", summary.OverloadHours).
		Msg("Teacher is overloaded")
}

// ownedAssignment loads an assignment and checks it belongs to the teacher
func ownedAssignment(ctx context.Context, store repositories.AssignmentStore, teacherID int64, id uuid.UUID) (*models.WorkloadAssignment, error) {
	a, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.TeacherID != teacherID {
		return nil, apperrors.ErrAssignmentNotFound
	}
	return a, nil
}

func maxHoursOf(t *models.Teacher) float64 {
	if t == nil || t.MaxHours == nil {
		return 0
	}
	return *t.MaxHours
}
