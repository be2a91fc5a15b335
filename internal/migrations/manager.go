package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/pkg/logger"
)

// Manager implements MigrationManager
type Manager struct {
	logger      logger.Logger
	registry    MigrationRegistry
	codeVersion func() (float64, error)
}

// NewManager creates a migration manager over the default registry
func NewManager(logger logger.Logger) *Manager {
	return NewManagerWithRegistry(logger, DefaultRegistry)
}

func NewManagerWithRegistry(logger logger.Logger, registry MigrationRegistry) *Manager {
	return &Manager{
		logger:      logger,
		registry:    registry,
		codeVersion: GetCurrentCodeVersion,
	}
}

// GetCurrentDBVersion reads the stored version; exists is false on a first boot
func (m *Manager) GetCurrentDBVersion(ctx context.Context, db *sql.DB) (float64, error, bool) {
	var versionStr string
	err := db.QueryRowContext(ctx, "SELECT value FROM app_settings WHERE key = 'db_version'").Scan(&versionStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil, false
		}
		return 0, fmt.Errorf("failed to get current database version: %w", err), false
	}

	version, err := strconv.ParseFloat(versionStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid database version format '%s': %w", versionStr, err), false
	}

	return version, nil, true
}

// SetCurrentDBVersion stores the major version
func (m *Manager) SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error {
	versionStr := fmt.Sprintf("%.0f", version)

	_, err := db.ExecContext(ctx, `
		INSERT INTO app_settings (key, value) VALUES ('db_version', $1)
		ON CONFLICT (key) DO UPDATE SET
			value = $1,
			updated_at = CURRENT_TIMESTAMP
	`, versionStr)
	if err != nil {
		return fmt.Errorf("failed to set database version to %s: %w", versionStr, err)
	}

	m.logger.WithField("version", versionStr).Info("Database version updated")
	return nil
}

// RunMigrations brings the database to the code version.
// A first boot starts from BaselineVersion since the tables may predate this service.
func (m *Manager) RunMigrations(ctx context.Context, cfg *config.Config, db *sql.DB) error {
	m.logger.Info("Starting migration process")

	currentDBVersion, err, versionExists := m.GetCurrentDBVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current database version: %w", err)
	}
	if !versionExists {
		m.logger.Info("No database version stored, replaying migrations from baseline")
		currentDBVersion = BaselineVersion
	}

	currentCodeVersion, err := m.codeVersion()
	if err != nil {
		return fmt.Errorf("failed to get current code version: %w", err)
	}

	m.logger.WithFields(map[string]interface{}{
		"db_version":   fmt.Sprintf("%.0f", currentDBVersion),
		"code_version": fmt.Sprintf("%.0f", currentCodeVersion),
	}).Info("Version comparison")

	if currentDBVersion >= currentCodeVersion {
		if !versionExists {
			return m.SetCurrentDBVersion(ctx, db, currentCodeVersion)
		}
		m.logger.Info("Database is up to date, no migrations needed")
		return nil
	}

	for _, migration := range m.registry.GetMigrations() {
		version := migration.GetMajorVersion()
		if version <= currentDBVersion || version > currentCodeVersion {
			continue
		}
		if err := m.executeMigration(ctx, cfg, db, migration); err != nil {
			return fmt.Errorf("migration failed for version %.0f: %w", version, err)
		}
	}

	if err := m.SetCurrentDBVersion(ctx, db, currentCodeVersion); err != nil {
		return fmt.Errorf("failed to update database version after migrations: %w", err)
	}

	m.logger.WithField("version", fmt.Sprintf("%.0f", currentCodeVersion)).Info("Migration process completed successfully")
	return nil
}

// executeMigration runs one migration in its own transaction
func (m *Manager) executeMigration(ctx context.Context, cfg *config.Config, db *sql.DB, migration MajorMigrationInterface) error {
	log := m.logger.WithFields(map[string]interface{}{
		"version":     fmt.Sprintf("%.0f", migration.GetMajorVersion()),
		"description": migration.Description(),
	})
	log.Info("Executing migration")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := migration.Up(ctx, cfg, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration transaction: %w", err)
	}

	log.Info("Migration completed successfully")
	return nil
}
