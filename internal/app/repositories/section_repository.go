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

// SectionRepository handles section and group database operations
type SectionRepository struct {
	db db.DBTX
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{db: pool}
}

// CreateSection inserts a section and sets its ID
func (r *SectionRepository) CreateSection(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (formation_id, name, capacity)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, section.FormationID, section.Name, section.Capacity).Scan(&section.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sections_formation_name_key") {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "section name already used in this formation")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFormationNotFound
		}
		return fmt.Errorf("error creating section: %w", err)
	}
	return nil
}

// CreateGroup inserts a student group and sets its ID
func (r *SectionRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO student_groups (section_id, name, type, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, group.SectionID, group.Name, group.Type, group.Capacity).Scan(&group.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_groups_section_name_key") {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "group name already used in this section")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSectionNotFound
		}
		return fmt.Errorf("error creating group: %w", err)
	}
	return nil
}

// GetSection retrieves a section with its groups
func (r *SectionRepository) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	sections, err := r.querySections(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, apperrors.ErrSectionNotFound
	}
	return sections[0], nil
}

// ListSections lists the sections of a formation with their groups
func (r *SectionRepository) ListSections(ctx context.Context, formationID int64) ([]*models.Section, error) {
	return r.querySections(ctx, squirrel.Eq{"formation_id": formationID})
}

func (r *SectionRepository) querySections(ctx context.Context, where squirrel.Sqlizer) ([]*models.Section, error) {
	sql, args, err := psql.Select("id", "formation_id", "name", "capacity").
		From("sections").
		Where(where).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build section query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	defer rows.Close()

	sections := make([]*models.Section, 0)
	byID := make(map[int64]*models.Section)
	ids := make([]int64, 0)
	for rows.Next() {
		s := &models.Section{Groups: []models.Group{}}
		if err := rows.Scan(&s.ID, &s.FormationID, &s.Name, &s.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning section: %w", err)
		}
		sections = append(sections, s)
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return sections, nil
	}

	sql, args, err = psql.Select("id", "section_id", "name", "type", "capacity").
		From("student_groups").
		Where(squirrel.Eq{"section_id": ids}).
		OrderBy("section_id", "type", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group query: %w", err)
	}

	groupRows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying groups: %w", err)
	}
	defer groupRows.Close()

	for groupRows.Next() {
		var g models.Group
		if err := groupRows.Scan(&g.ID, &g.SectionID, &g.Name, &g.Type, &g.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning group: %w", err)
		}
		if s, ok := byID[g.SectionID]; ok {
			s.Groups = append(s.Groups, g)
		}
	}
	return sections, groupRows.Err()
}
