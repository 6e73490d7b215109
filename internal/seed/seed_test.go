package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appModels "github.com/yigit/workload/internal/app/models"
	appRepos "github.com/yigit/workload/internal/app/repositories"
	"github.com/yigit/workload/internal/app/workload"
	"github.com/yigit/workload/internal/pkg/apperrors"
)

type recordingStore struct {
	nextID     int64
	formations []*appModels.FormationOffer
	modules    []*appModels.Module
	atoms      []*appModels.PedagogicalAtom
	sections   []*appModels.Section
	groups     []*appModels.Group
	emails     map[string]bool
}

func newRecordingStore() *recordingStore {
	return &recordingStore{emails: make(map[string]bool)}
}

func (s *recordingStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *recordingStore) CreateFormation(_ context.Context, f *appModels.FormationOffer) error {
	f.ID = s.id()
	s.formations = append(s.formations, f)
	return nil
}

func (s *recordingStore) CreateModule(_ context.Context, m *appModels.Module) error {
	m.ID = s.id()
	s.modules = append(s.modules, m)
	return nil
}

func (s *recordingStore) CreateAtom(_ context.Context, a *appModels.PedagogicalAtom) error {
	a.ID = s.id()
	s.atoms = append(s.atoms, a)
	return nil
}

func (s *recordingStore) GetFormation(context.Context, int64) (*appModels.FormationOffer, error) {
	return nil, apperrors.ErrFormationNotFound
}

func (s *recordingStore) ListFormations(_ context.Context, year string) ([]*appModels.FormationOffer, error) {
	var out []*appModels.FormationOffer
	for _, f := range s.formations {
		if f.AcademicYear == year {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *recordingStore) GetModule(context.Context, int64) (*appModels.Module, error) {
	return nil, apperrors.ErrModuleNotFound
}

func (s *recordingStore) ListModules(context.Context, int64) ([]*appModels.Module, error) {
	return s.modules, nil
}

func (s *recordingStore) GetAtom(context.Context, int64) (*appModels.PedagogicalAtom, error) {
	return nil, apperrors.ErrAtomNotFound
}

func (s *recordingStore) CreateSection(_ context.Context, sec *appModels.Section) error {
	sec.ID = s.id()
	s.sections = append(s.sections, sec)
	return nil
}

func (s *recordingStore) CreateGroup(_ context.Context, g *appModels.Group) error {
	g.ID = s.id()
	s.groups = append(s.groups, g)
	return nil
}

func (s *recordingStore) GetSection(context.Context, int64) (*appModels.Section, error) {
	return nil, apperrors.ErrSectionNotFound
}

func (s *recordingStore) ListSections(context.Context, int64) ([]*appModels.Section, error) {
	return s.sections, nil
}

func (s *recordingStore) Create(_ context.Context, t *appModels.Teacher) error {
	if s.emails[t.Email] {
		return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "duplicate")
	}
	s.emails[t.Email] = true
	t.ID = s.id()
	return nil
}

func (s *recordingStore) GetByID(context.Context, int64) (*appModels.Teacher, error) {
	return nil, apperrors.ErrTeacherNotFound
}

func (s *recordingStore) List(context.Context, appRepos.TeacherFilter) ([]*appModels.Teacher, int64, error) {
	return nil, 0, nil
}

func TestCreateDemoData(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()

	require.NoError(t, CreateDemoData(ctx, store, store, store, "2024-2025", zerolog.Nop()))
	assert.Len(t, store.formations, 1)
	assert.Len(t, store.modules, len(demoModules()))
	assert.Len(t, store.sections, 2)
	assert.Len(t, store.emails, len(demoTeachers()))

	atoms, groups := len(store.atoms), len(store.groups)
	require.NoError(t, CreateDemoData(ctx, store, store, store, "2024-2025", zerolog.Nop()))
	assert.Len(t, store.formations, 1, "second run must not duplicate the formation")
	assert.Equal(t, atoms, len(store.atoms))
	assert.Equal(t, groups, len(store.groups))

	require.NoError(t, CreateDemoData(ctx, store, store, store, "2025-2026", zerolog.Nop()))
	assert.Len(t, store.formations, 2)
}

func TestDemoCatalogueIsConsistent(t *testing.T) {
	for _, ss := range demoSections() {
		for _, g := range ss.groups {
			assert.LessOrEqual(t, g.Capacity, ss.section.Capacity, "%s/%s", ss.section.Name, g.Name)
		}
	}
	for _, ms := range demoModules() {
		for _, a := range ms.atoms {
			_, err := workload.CalculateAtomHours(a, 30)
			assert.NoError(t, err, "%s %s", ms.module.Code, a.Type)
		}
	}
}
