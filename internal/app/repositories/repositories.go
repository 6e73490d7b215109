package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/workload/internal/app/models"
)

// psql builds PostgreSQL statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// FormationStore persists formation offers, modules and their pedagogical atoms
type FormationStore interface {
	CreateFormation(ctx context.Context, formation *models.FormationOffer) error
	CreateModule(ctx context.Context, module *models.Module) error
	CreateAtom(ctx context.Context, atom *models.PedagogicalAtom) error
	GetFormation(ctx context.Context, id int64) (*models.FormationOffer, error)
	ListFormations(ctx context.Context, academicYear string) ([]*models.FormationOffer, error)
	GetModule(ctx context.Context, id int64) (*models.Module, error)
	ListModules(ctx context.Context, formationID int64) ([]*models.Module, error)
	GetAtom(ctx context.Context, id int64) (*models.PedagogicalAtom, error)
}

// SectionStore persists sections and their student groups
type SectionStore interface {
	CreateSection(ctx context.Context, section *models.Section) error
	CreateGroup(ctx context.Context, group *models.Group) error
	GetSection(ctx context.Context, id int64) (*models.Section, error)
	ListSections(ctx context.Context, formationID int64) ([]*models.Section, error)
}

// TeacherFilter narrows a teacher listing
type TeacherFilter struct {
	Department string
	Role       models.Role
	Offset     uint64
	Limit      int
}

// TeacherStore persists teachers
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	List(ctx context.Context, filter TeacherFilter) ([]*models.Teacher, int64, error)
}

// WorkloadFilter narrows a workload listing
type WorkloadFilter struct {
	AcademicYear string
	Semester     models.Semester
	Status       models.WorkloadStatus
	Offset       uint64
	Limit        int
}

// AssignmentStore persists workload assignments and the per-term aggregates derived from them
type AssignmentStore interface {
	// WithinTx runs fn with a store bound to a single transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context, store AssignmentStore) error) error
	// LockTeacher serialises concurrent changes to one teacher's assignments.
	LockTeacher(ctx context.Context, teacherID int64) error
	Create(ctx context.Context, assignment *models.WorkloadAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkloadAssignment, error)
	ListByTeacher(ctx context.Context, teacherID int64, academicYear string, semester models.Semester) ([]*models.WorkloadAssignment, error)
	Confirm(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	SaveWorkload(ctx context.Context, workload *models.TeacherWorkload) error
	GetWorkload(ctx context.Context, teacherID int64, academicYear string, semester models.Semester) (*models.TeacherWorkload, error)
	ListWorkloads(ctx context.Context, filter WorkloadFilter) ([]*models.TeacherWorkload, int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	FormationRepository  *FormationRepository
	SectionRepository    *SectionRepository
	TeacherRepository    *TeacherRepository
	AssignmentRepository *AssignmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		FormationRepository:  NewFormationRepository(pool),
		SectionRepository:    NewSectionRepository(pool),
		TeacherRepository:    NewTeacherRepository(pool),
		AssignmentRepository: NewAssignmentRepository(pool),
	}
}
