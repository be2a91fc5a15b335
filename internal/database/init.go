package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rllL1/portfolio/internal/database/schema"
)

// InitializeDatabase creates the tables and installs the change triggers
func InitializeDatabase(ctx context.Context, db *sql.DB) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, query := range schema.TriggerStatements() {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to install change trigger: %w", err)
		}
	}

	return nil
}

// SeedDatabase inserts the singleton rows (hero, settings, social links) when missing
func SeedDatabase(ctx context.Context, db *sql.DB) error {
	for _, query := range schema.SeedStatements {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return nil
}

// CleanDatabase drops all tables in reverse order
func CleanDatabase(ctx context.Context, db *sql.DB) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", schema.TableNames[i])
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}
	if _, err := db.ExecContext(ctx, "DROP FUNCTION IF EXISTS notify_portfolio_change() CASCADE"); err != nil {
		return fmt.Errorf("failed to drop notify function: %w", err)
	}
	return nil
}
