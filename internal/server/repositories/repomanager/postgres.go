// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/uelms-project/uelms/internal/dbx"
	"github.com/uelms-project/uelms/internal/server/migrations"
	"github.com/uelms-project/uelms/internal/server/repositories/accounts"
	"github.com/uelms-project/uelms/internal/server/repositories/rechecks"
	"github.com/uelms-project/uelms/internal/server/repositories/recovery"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

// Recovery returns a recovery.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Recovery(db dbx.DBTX) recovery.Repository {
	return recovery.NewPostgresRepository(db)
}

// Rechecks returns a rechecks.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Rechecks(db dbx.DBTX) rechecks.Repository {
	return rechecks.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection. Goose records applied versions
// in its own table, so repeat runs are no-ops.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
