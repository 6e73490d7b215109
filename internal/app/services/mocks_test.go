package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/repositories"
	"github.com/yigit/workload/internal/pkg/apperrors"
)

type mockFormationStore struct {
	mock.Mock
}

func (m *mockFormationStore) CreateFormation(ctx context.Context, f *models.FormationOffer) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFormationStore) CreateModule(ctx context.Context, mod *models.Module) error {
	return m.Called(ctx, mod).Error(0)
}

func (m *mockFormationStore) CreateAtom(ctx context.Context, a *models.PedagogicalAtom) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockFormationStore) GetFormation(ctx context.Context, id int64) (*models.FormationOffer, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*models.FormationOffer)
	return f, args.Error(1)
}

func (m *mockFormationStore) ListFormations(ctx context.Context, year string) ([]*models.FormationOffer, error) {
	args := m.Called(ctx, year)
	list, _ := args.Get(0).([]*models.FormationOffer)
	return list, args.Error(1)
}

func (m *mockFormationStore) GetModule(ctx context.Context, id int64) (*models.Module, error) {
	args := m.Called(ctx, id)
	mod, _ := args.Get(0).(*models.Module)
	return mod, args.Error(1)
}

func (m *mockFormationStore) ListModules(ctx context.Context, formationID int64) ([]*models.Module, error) {
	args := m.Called(ctx, formationID)
	list, _ := args.Get(0).([]*models.Module)
	return list, args.Error(1)
}

func (m *mockFormationStore) GetAtom(ctx context.Context, id int64) (*models.PedagogicalAtom, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.PedagogicalAtom)
	return a, args.Error(1)
}

type mockSectionStore struct {
	mock.Mock
}

func (m *mockSectionStore) CreateSection(ctx context.Context, s *models.Section) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSectionStore) CreateGroup(ctx context.Context, g *models.Group) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockSectionStore) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Section)
	return s, args.Error(1)
}

func (m *mockSectionStore) ListSections(ctx context.Context, formationID int64) ([]*models.Section, error) {
	args := m.Called(ctx, formationID)
	list, _ := args.Get(0).([]*models.Section)
	return list, args.Error(1)
}

type mockTeacherStore struct {
	mock.Mock
}

func (m *mockTeacherStore) Create(ctx context.Context, t *models.Teacher) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTeacherStore) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Teacher)
	return t, args.Error(1)
}

func (m *mockTeacherStore) List(ctx context.Context, filter repositories.TeacherFilter) ([]*models.Teacher, int64, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*models.Teacher)
	return list, args.Get(1).(int64), args.Error(2)
}

// memoryAssignmentStore keeps assignments in memory. Transactions are not
// isolated; failures inside WithinTx restore the previous state.
type memoryAssignmentStore struct {
	mu          sync.Mutex
	assignments map[uuid.UUID]*models.WorkloadAssignment
	workloads   map[string]*models.TeacherWorkload
	locked      []int64
	failSave    error
	failGet     error
}

func newMemoryAssignmentStore() *memoryAssignmentStore {
	return &memoryAssignmentStore{
		assignments: make(map[uuid.UUID]*models.WorkloadAssignment),
		workloads:   make(map[string]*models.TeacherWorkload),
	}
}

func workloadKey(teacherID int64, year string, semester models.Semester) string {
	return fmt.Sprintf("%d/%s/%s", teacherID, year, semester)
}

func (s *memoryAssignmentStore) WithinTx(ctx context.Context, fn func(ctx context.Context, store repositories.AssignmentStore) error) error {
	s.mu.Lock()
	assignments := make(map[uuid.UUID]*models.WorkloadAssignment, len(s.assignments))
	for k, v := range s.assignments {
		c := *v
		assignments[k] = &c
	}
	workloads := make(map[string]*models.TeacherWorkload, len(s.workloads))
	for k, v := range s.workloads {
		c := *v
		workloads[k] = &c
	}
	s.mu.Unlock()

	if err := fn(ctx, s); err != nil {
		s.mu.Lock()
		s.assignments = assignments
		s.workloads = workloads
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memoryAssignmentStore) LockTeacher(_ context.Context, teacherID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = append(s.locked, teacherID)
	return nil
}

func (s *memoryAssignmentStore) Create(_ context.Context, a *models.WorkloadAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *a
	s.assignments[a.ID] = &c
	return nil
}

func (s *memoryAssignmentStore) GetByID(_ context.Context, id uuid.UUID) (*models.WorkloadAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[id]
	if !ok {
		return nil, apperrors.ErrAssignmentNotFound
	}
	c := *a
	return &c, nil
}

func (s *memoryAssignmentStore) ListByTeacher(_ context.Context, teacherID int64, year string, semester models.Semester) ([]*models.WorkloadAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*models.WorkloadAssignment, 0)
	for _, a := range s.assignments {
		if a.TeacherID == teacherID && a.AcademicYear == year && a.Semester == semester {
			c := *a
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (s *memoryAssignmentStore) Confirm(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[id]
	if !ok {
		return apperrors.ErrAssignmentNotFound
	}
	a.IsConfirmed = true
	if a.ConfirmedAt == nil {
		a.ConfirmedAt = &at
	}
	return nil
}

func (s *memoryAssignmentStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assignments[id]; !ok {
		return apperrors.ErrAssignmentNotFound
	}
	delete(s.assignments, id)
	return nil
}

func (s *memoryAssignmentStore) SaveWorkload(_ context.Context, w *models.TeacherWorkload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	c := *w
	c.Assignments = nil
	c.Teacher = nil
	s.workloads[workloadKey(w.TeacherID, w.AcademicYear, w.Semester)] = &c
	return nil
}

func (s *memoryAssignmentStore) GetWorkload(_ context.Context, teacherID int64, year string, semester models.Semester) (*models.TeacherWorkload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return nil, s.failGet
	}
	w, ok := s.workloads[workloadKey(teacherID, year, semester)]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	c := *w
	return &c, nil
}

func (s *memoryAssignmentStore) ListWorkloads(_ context.Context, filter repositories.WorkloadFilter) ([]*models.TeacherWorkload, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*models.TeacherWorkload, 0)
	for _, w := range s.workloads {
		if filter.AcademicYear != "" && w.AcademicYear != filter.AcademicYear {
			continue
		}
		if filter.Semester != "" && w.Semester != filter.Semester {
			continue
		}
		if filter.Status != "" && w.Status != filter.Status {
			continue
		}
		c := *w
		list = append(list, &c)
	}
	return list, int64(len(list)), nil
}
