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
	"github.com/yigit/workload/internal/pkg/logger"
)

var (
	formationColumns = []string{"id", "code", "name", "level", "academic_year"}
	moduleColumns    = []string{"id", "formation_id", "code", "name", "coefficient", "credits", "semester"}
	atomColumns      = []string{"id", "module_id", "type", "hours", "total_weeks", "group_size"}
)

// FormationRepository handles formation, module and atom database operations
type FormationRepository struct {
	db db.DBTX
}

// NewFormationRepository creates a new FormationRepository
func NewFormationRepository(pool *pgxpool.Pool) *FormationRepository {
	return &FormationRepository{db: pool}
}

// CreateFormation inserts a formation offer and sets its ID
func (r *FormationRepository) CreateFormation(ctx context.Context, formation *models.FormationOffer) error {
	query := `
		INSERT INTO formation_offers (code, name, level, academic_year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, formation.Code, formation.Name, formation.Level, formation.AcademicYear).Scan(&formation.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "formation_offers_code_year_key") {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists,
				fmt.Sprintf("formation %s already exists for %s", formation.Code, formation.AcademicYear))
		}
		return fmt.Errorf("error creating formation offer: %w", err)
	}
	return nil
}

// CreateModule inserts a module and sets its ID
func (r *FormationRepository) CreateModule(ctx context.Context, module *models.Module) error {
	query := `
		INSERT INTO modules (formation_id, code, name, coefficient, credits, semester)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		module.FormationID, module.Code, module.Name, module.Coefficient, module.Credits, module.Semester,
	).Scan(&module.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "modules_formation_code_key") {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "module code already used in this formation")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFormationNotFound
		}
		return fmt.Errorf("error creating module: %w", err)
	}
	return nil
}

// CreateAtom inserts a pedagogical atom and sets its ID
func (r *FormationRepository) CreateAtom(ctx context.Context, atom *models.PedagogicalAtom) error {
	query := `
		INSERT INTO pedagogical_atoms (module_id, type, hours, total_weeks, group_size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, atom.ModuleID, atom.Type, atom.Hours, atom.TotalWeeks, atom.GroupSize).Scan(&atom.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "pedagogical_atoms_module_type_key") {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "module already has an atom of this type")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrModuleNotFound
		}
		return fmt.Errorf("error creating pedagogical atom: %w", err)
	}
	return nil
}

// GetFormation retrieves a formation offer by ID
func (r *FormationRepository) GetFormation(ctx context.Context, id int64) (*models.FormationOffer, error) {
	sql, args, err := psql.Select(formationColumns...).
		From("formation_offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get formation query: %w", err)
	}

	var f models.FormationOffer
	err = r.db.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.Code, &f.Name, &f.Level, &f.AcademicYear)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrFormationNotFound
		}
		return nil, fmt.Errorf("error retrieving formation offer: %w", err)
	}
	return &f, nil
}

// ListFormations lists formation offers, optionally for a single academic year
func (r *FormationRepository) ListFormations(ctx context.Context, academicYear string) ([]*models.FormationOffer, error) {
	qb := psql.Select(formationColumns...).From("formation_offers").OrderBy("academic_year DESC", "code")
	if academicYear != "" {
		qb = qb.Where(squirrel.Eq{"academic_year": academicYear})
	}
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list formations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing formation offers: %w", err)
	}
	defer rows.Close()

	formations := make([]*models.FormationOffer, 0)
	for rows.Next() {
		var f models.FormationOffer
		if err := rows.Scan(&f.ID, &f.Code, &f.Name, &f.Level, &f.AcademicYear); err != nil {
			return nil, fmt.Errorf("error scanning formation offer: %w", err)
		}
		formations = append(formations, &f)
	}
	return formations, rows.Err()
}

// GetModule retrieves a module with its atoms
func (r *FormationRepository) GetModule(ctx context.Context, id int64) (*models.Module, error) {
	modules, err := r.queryModules(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, apperrors.ErrModuleNotFound
	}
	return modules[0], nil
}

// ListModules lists the modules of a formation with their atoms
func (r *FormationRepository) ListModules(ctx context.Context, formationID int64) ([]*models.Module, error) {
	return r.queryModules(ctx, squirrel.Eq{"formation_id": formationID})
}

// GetAtom retrieves a single pedagogical atom
func (r *FormationRepository) GetAtom(ctx context.Context, id int64) (*models.PedagogicalAtom, error) {
	atoms, err := r.queryAtoms(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(atoms) == 0 {
		return nil, apperrors.ErrAtomNotFound
	}
	return &atoms[0], nil
}

func (r *FormationRepository) queryModules(ctx context.Context, where squirrel.Sqlizer) ([]*models.Module, error) {
	sql, args, err := psql.Select(moduleColumns...).From("modules").Where(where).OrderBy("semester", "code").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build module query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := make([]*models.Module, 0)
	byID := make(map[int64]*models.Module)
	ids := make([]int64, 0)
	for rows.Next() {
		m := &models.Module{Atoms: []models.PedagogicalAtom{}}
		if err := rows.Scan(&m.ID, &m.FormationID, &m.Code, &m.Name, &m.Coefficient, &m.Credits, &m.Semester); err != nil {
			return nil, fmt.Errorf("error scanning module: %w", err)
		}
		modules = append(modules, m)
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return modules, nil
	}

	atoms, err := r.queryAtoms(ctx, squirrel.Eq{"module_id": ids})
	if err != nil {
		return nil, err
	}
	for _, a := range atoms {
		if m, ok := byID[a.ModuleID]; ok {
			m.Atoms = append(m.Atoms, a)
		} else {
			logger.Warn().Int64("atomId", a.ID).Int64("moduleId", a.ModuleID).Msg("Atom returned for unrequested module")
		}
	}
	return modules, nil
}

func (r *FormationRepository) queryAtoms(ctx context.Context, where squirrel.Sqlizer) ([]models.PedagogicalAtom, error) {
	sql, args, err := psql.Select(atomColumns...).From("pedagogical_atoms").Where(where).OrderBy("module_id", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build atom query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying pedagogical atoms: %w", err)
	}
	defer rows.Close()

	atoms := make([]models.PedagogicalAtom, 0)
	for rows.Next() {
		var a models.PedagogicalAtom
		if err := rows.Scan(&a.ID, &a.ModuleID, &a.Type, &a.Hours, &a.TotalWeeks, &a.GroupSize); err != nil {
			return nil, fmt.Errorf("error scanning pedagogical atom: %w", err)
		}
		atoms = append(atoms, a)
	}
	return atoms, rows.Err()
}
