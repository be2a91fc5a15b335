package migrations

import (
	"context"
	"database/sql"

	"github.com/rllL1/portfolio/config"
)

// DBExecutor represents a database connection that can execute queries
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// MajorMigrationInterface defines a major version migration.
// Up must be idempotent: a first boot against an existing project replays every migration.
type MajorMigrationInterface interface {
	GetMajorVersion() float64
	Description() string
	Up(ctx context.Context, config *config.Config, db DBExecutor) error
}

// MigrationManager interface for managing migrations
type MigrationManager interface {
	GetCurrentDBVersion(ctx context.Context, db *sql.DB) (float64, error, bool)
	SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error
	RunMigrations(ctx context.Context, config *config.Config, db *sql.DB) error
}

// MigrationRegistry manages registered migrations
type MigrationRegistry interface {
	Register(migration MajorMigrationInterface)
	GetMigrations() []MajorMigrationInterface
	GetMigration(version float64) (MajorMigrationInterface, bool)
}
