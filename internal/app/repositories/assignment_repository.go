package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/db"
	"github.com/yigit/workload/internal/pkg/apperrors"
	"github.com/yigit/workload/internal/pkg/dberrors"
)

var assignmentColumns = []string{
	"id", "teacher_id", "module_id", "atom_id", "atom_type", "section_id", "target_type", "target_id",
	"academic_year", "semester", "hours_per_week", "total_weeks", "total_hours", "groups_needed",
	"coefficient", "is_confirmed", "created_at", "confirmed_at",
}

var workloadColumns = []string{
	"teacher_id", "academic_year", "semester", "total_hours", "confirmed_hours", "max_hours",
	"overload_hours", "underload_hours", "status", "assignment_count", "updated_at",
}

// AssignmentRepository handles workload assignments and teacher workload aggregates
type AssignmentRepository struct {
	pool *pgxpool.Pool
	db   db.DBTX
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool, db: pool}
}

// WithinTx runs fn with a repository bound to a new transaction. Nested calls reuse the current one.
func (r *AssignmentRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, store AssignmentStore) error) error {
	if r.pool == nil {
		return fn(ctx, r)
	}
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &AssignmentRepository{db: tx})
	})
}

// LockTeacher takes a row lock on the teacher until the surrounding transaction ends
func (r *AssignmentRepository) LockTeacher(ctx context.Context, teacherID int64) error {
	sql, args, err := lockTeacherQuery(teacherID).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build lock teacher query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error locking teacher: %w", err)
	}
	return nil
}

// Create inserts an assignment. A nil ID is replaced with a new UUID.
func (r *AssignmentRepository) Create(ctx context.Context, a *models.WorkloadAssignment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	sql, args, err := createAssignmentQuery(a).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create assignment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrResourceNotFound, "assignment references an unknown teacher, module, atom or section")
		}
		return fmt.Errorf("error creating workload assignment: %w", err)
	}
	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkloadAssignment, error) {
	sql, args, err := psql.Select(assignmentColumns...).
		From("workload_assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	a, err := scanAssignment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving workload assignment: %w", err)
	}
	return a, nil
}

// ListByTeacher returns every assignment of a teacher for one term, oldest first
func (r *AssignmentRepository) ListByTeacher(ctx context.Context, teacherID int64, academicYear string, semester models.Semester) ([]*models.WorkloadAssignment, error) {
	sql, args, err := psql.Select(assignmentColumns...).
		From("workload_assignments").
		Where(squirrel.Eq{"teacher_id": teacherID, "academic_year": academicYear, "semester": semester}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing workload assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.WorkloadAssignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning workload assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Confirm marks an assignment confirmed. Confirming twice keeps the first timestamp.
func (r *AssignmentRepository) Confirm(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := psql.Update("workload_assignments").
		Set("is_confirmed", true).
		Set("confirmed_at", squirrel.Expr("COALESCE(confirmed_at, ?)", at)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build confirm assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error confirming workload assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// Delete removes an assignment
func (r *AssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM workload_assignments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting workload assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// SaveWorkload inserts or replaces the aggregate of a teacher for a term
func (r *AssignmentRepository) SaveWorkload(ctx context.Context, w *models.TeacherWorkload) error {
	sql, args, err := saveWorkloadQuery(w).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build save workload query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error saving teacher workload: %w", err)
	}
	return nil
}

// GetWorkload retrieves the stored aggregate of a teacher for a term
func (r *AssignmentRepository) GetWorkload(ctx context.Context, teacherID int64, academicYear string, semester models.Semester) (*models.TeacherWorkload, error) {
	sql, args, err := psql.Select(workloadColumns...).
		From("teacher_workloads").
		Where(squirrel.Eq{"teacher_id": teacherID, "academic_year": academicYear, "semester": semester}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get workload query: %w", err)
	}

	w, err := scanWorkload(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("no workload recorded for this teacher and term")
		}
		return nil, fmt.Errorf("error retrieving teacher workload: %w", err)
	}
	return w, nil
}

// ListWorkloads returns a page of term aggregates, heaviest first, with their teachers
func (r *AssignmentRepository) ListWorkloads(ctx context.Context, filter WorkloadFilter) ([]*models.TeacherWorkload, int64, error) {
	countQuery, listQuery := listWorkloadsQueries(filter)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count workloads query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting teacher workloads: %w", err)
	}

	sql, args, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list workloads query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing teacher workloads: %w", err)
	}
	defer rows.Close()

	workloads := make([]*models.TeacherWorkload, 0)
	for rows.Next() {
		var w models.TeacherWorkload
		var t models.Teacher
		if err := rows.Scan(append(workloadFields(&w), teacherFields(&t)...)...); err != nil {
			return nil, 0, fmt.Errorf("error scanning teacher workload: %w", err)
		}
		w.Teacher = &t
		workloads = append(workloads, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return workloads, total, nil
}

func lockTeacherQuery(teacherID int64) squirrel.SelectBuilder {
	return psql.Select("id").
		From("teachers").
		Where(squirrel.Eq{"id": teacherID}).
		Suffix("FOR UPDATE")
}

func createAssignmentQuery(a *models.WorkloadAssignment) squirrel.InsertBuilder {
	return psql.Insert("workload_assignments").
		Columns(assignmentColumns...).
		Values(
			a.ID, a.TeacherID, a.ModuleID, a.AtomID, a.AtomType, a.SectionID, a.TargetType, a.TargetID,
			a.AcademicYear, a.Semester, a.HoursPerWeek, a.TotalWeeks, a.TotalHours, a.GroupsNeeded,
			a.Coefficient, a.IsConfirmed, a.CreatedAt, a.ConfirmedAt,
		)
}

// saveWorkloadQuery upserts on the (teacher, year, semester) key
func saveWorkloadQuery(w *models.TeacherWorkload) squirrel.InsertBuilder {
	return psql.Insert("teacher_workloads").
		Columns(workloadColumns...).
		Values(
			w.TeacherID, w.AcademicYear, w.Semester, w.TotalHours, w.ConfirmedHours, w.MaxHours,
			w.OverloadHours, w.UnderloadHours, w.Status, w.AssignmentCount, w.UpdatedAt,
		).
		Suffix(`ON CONFLICT (teacher_id, academic_year, semester) DO UPDATE SET
			total_hours = EXCLUDED.total_hours,
			confirmed_hours = EXCLUDED.confirmed_hours,
			max_hours = EXCLUDED.max_hours,
			overload_hours = EXCLUDED.overload_hours,
			underload_hours = EXCLUDED.underload_hours,
			status = EXCLUDED.status,
			assignment_count = EXCLUDED.assignment_count,
			updated_at = EXCLUDED.updated_at`)
}

// listWorkloadsQueries builds the total count and the page query for filter
func listWorkloadsQueries(filter WorkloadFilter) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	cols := make([]string, 0, len(workloadColumns)+len(teacherColumns))
	for _, c := range workloadColumns {
		cols = append(cols, "w."+c)
	}
	for _, c := range teacherColumns {
		cols = append(cols, "t."+c)
	}

	where := squirrel.And{}
	if filter.AcademicYear != "" {
		where = append(where, squirrel.Eq{"w.academic_year": filter.AcademicYear})
	}
	if filter.Semester != "" {
		where = append(where, squirrel.Eq{"w.semester": filter.Semester})
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"w.status": filter.Status})
	}

	countQuery := psql.Select("count(*)").From("teacher_workloads w")
	listQuery := psql.Select(cols...).
		From("teacher_workloads w").
		Join("teachers t ON t.id = w.teacher_id")
	if len(where) > 0 {
		countQuery = countQuery.Where(where)
		listQuery = listQuery.Where(where)
	}
	listQuery = listQuery.
		OrderBy("w.total_hours DESC", "t.last_name", "t.id").
		Offset(filter.Offset)
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(uint64(filter.Limit))
	}
	return countQuery, listQuery
}

// assignmentFields returns the scan targets of a in assignmentColumns order
func assignmentFields(a *models.WorkloadAssignment) []interface{} {
	return []interface{}{
		&a.ID, &a.TeacherID, &a.ModuleID, &a.AtomID, &a.AtomType, &a.SectionID, &a.TargetType, &a.TargetID,
		&a.AcademicYear, &a.Semester, &a.HoursPerWeek, &a.TotalWeeks, &a.TotalHours, &a.GroupsNeeded,
		&a.Coefficient, &a.IsConfirmed, &a.CreatedAt, &a.ConfirmedAt,
	}
}

// workloadFields returns the scan targets of w in workloadColumns order
func workloadFields(w *models.TeacherWorkload) []interface{} {
	return []interface{}{
		&w.TeacherID, &w.AcademicYear, &w.Semester, &w.TotalHours, &w.ConfirmedHours, &w.MaxHours,
		&w.OverloadHours, &w.UnderloadHours, &w.Status, &w.AssignmentCount, &w.UpdatedAt,
	}
}

func scanAssignment(row pgx.Row) (*models.WorkloadAssignment, error) {
	var a models.WorkloadAssignment
	if err := row.Scan(assignmentFields(&a)...); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanWorkload(row pgx.Row) (*models.TeacherWorkload, error) {
	var w models.TeacherWorkload
	if err := row.Scan(workloadFields(&w)...); err != nil {
		return nil, err
	}
	return &w, nil
}
