package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rllL1/portfolio/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// orderedTable holds the queries shared by the tables sorted by order_index
type orderedTable struct {
	db     *sql.DB
	table  string
	entity string
}

// selectOrdered lists columns sorted by order_index, ties broken by creation time
func (t *orderedTable) selectOrdered(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From(t.table).
		OrderBy("order_index ASC", "created_at ASC")
}

func (t *orderedTable) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(t.table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.table, err)
	}
	return count, nil
}

func (t *orderedTable) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete(t.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", t.entity, err)
	}
	return requireAffected(result, t.entity, id)
}

// Reorder rewrites order_index to 0..n-1 following ids, all or nothing
func (t *orderedTable) Reorder(ctx context.Context, ids []string) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()
	for index, id := range ids {
		query, args, err := psql.Update(t.table).
			Set("order_index", index).
			Set("updated_at", now).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build reorder query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to reorder %s: %w", t.table, err)
		}
		if err := requireAffected(result, t.entity, id); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

// requireAffected turns a zero row write into ErrNotFound
func requireAffected(result sql.Result, entity, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFound(entity, id)
	}
	return nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
