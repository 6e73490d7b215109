package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Migration is one SQL file identified by the numeric prefix of its name
type Migration struct {
	Version  string
	Filename string
}

// Migrator manages database migrations
type Migrator struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: lgr.With().Str("component", "migrator").Logger(),
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied inside the migration's transaction
func recordMigration(ctx context.Context, tx pgx.Tx, version string) error {
	_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// CollectMigrations lists the SQL files of fsys sorted by name.
// "001_workload_schema.sql" has version "001".
func CollectMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var list []Migration
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version := strings.Split(entry.Name(), "_")[0]
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migrations %s and %s share version %s", prev, entry.Name(), version)
		}
		seen[version] = entry.Name()
		list = append(list, Migration{Version: version, Filename: entry.Name()})
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Filename < list[j].Filename })
	return list, nil
}

// Migrate applies every pending migration of fsys, each in its own transaction
func (m *Migrator) Migrate(ctx context.Context, fsys fs.FS) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	list, err := CollectMigrations(fsys)
	if err != nil {
		return err
	}

	for _, mig := range list {
		if err := m.apply(ctx, fsys, mig); err != nil {
			return err
		}
	}
	return nil
}

// MigrateFromDirectory applies the SQL files found in dirPath
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dirPath string) error {
	return m.Migrate(ctx, os.DirFS(dirPath))
}

func (m *Migrator) apply(ctx context.Context, fsys fs.FS, mig Migration) error {
	applied, err := m.isMigrationApplied(ctx, mig.Version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("file", mig.Filename).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(fsys, path.Clean(mig.Filename))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("error occurred during SQL migration %s: %w", mig.Filename, err)
	}

	if err := recordMigration(ctx, tx, mig.Version); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("file", mig.Filename).Msg("Migration applied")
	return nil
}
