package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/db"
	"github.com/yigit/workload/internal/pkg/apperrors"
	"github.com/yigit/workload/internal/pkg/dberrors"
)

var teacherColumns = []string{"id", "first_name", "last_name", "email", "grade", "department", "role", "max_hours"}

// teacherFields returns the scan targets of t in teacherColumns order
func teacherFields(t *models.Teacher) []interface{} {
	return []interface{}{&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Grade, &t.Department, &t.Role, &t.MaxHours}
}

// TeacherRepository handles database operations related to teachers
type TeacherRepository struct {
	db db.DBTX
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: pool}
}

// Create inserts a teacher and sets its ID
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := psql.Insert("teachers").
		Columns("first_name", "last_name", "email", "grade", "department", "role", "max_hours").
		Values(teacher.FirstName, teacher.LastName, teacher.Email, teacher.Grade, teacher.Department, teacher.Role, teacher.MaxHours).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_email_key") {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists,
				fmt.Sprintf("a teacher with email %s already exists", teacher.Email))
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewValidationError("maxHours", "maxHours must be positive")
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}
	return nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	sql, args, err := psql.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	var t models.Teacher
	err = r.db.QueryRow(ctx, sql, args...).Scan(teacherFields(&t)...)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &t, nil
}

// List returns a page of teachers and the total matching the filter
func (r *TeacherRepository) List(ctx context.Context, filter TeacherFilter) ([]*models.Teacher, int64, error) {
	queryBuilder := psql.Select(teacherColumns...).From("teachers")
	countBuilder := psql.Select("count(*)").From("teachers")

	if filter.Department != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"department": filter.Department})
		countBuilder = countBuilder.Where(squirrel.Eq{"department": filter.Department})
	}
	if filter.Role != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"role": filter.Role})
		countBuilder = countBuilder.Where(squirrel.Eq{"role": filter.Role})
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count teachers query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting teachers: %w", err)
	}

	queryBuilder = queryBuilder.OrderBy("last_name", "first_name", "id").Offset(filter.Offset)
	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit))
	}
	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	teachers := make([]*models.Teacher, 0)
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(teacherFields(&t)...); err != nil {
			return nil, 0, fmt.Errorf("error scanning teacher: %w", err)
		}
		teachers = append(teachers, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}
