package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/workload/internal/config"
	"github.com/yigit/workload/internal/pkg/logger"
)

const (
	connectTimeout = 10 * time.Second
	txTimeout      = 30 * time.Second
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so repositories can run
// inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PoolConfig translates the database section of the configuration into pgxpool settings
func PoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(min(cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns))

	if poolConfig.MaxConnLifetime, err = time.ParseDuration(cfg.Database.ConnMaxLifetime); err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}

	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}
	return poolConfig, nil
}

// NewPool opens the PostgreSQL connection pool and checks the server answers
func NewPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}
	return pool, nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction runs fn inside a transaction on pool, committing on success
// and rolling back on error or panic. Without a caller deadline the
// transaction is bounded by txTimeout.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFn) (err error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, txTimeout)
		defer cancel()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
