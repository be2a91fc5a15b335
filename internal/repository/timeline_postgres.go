package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rllL1/portfolio/internal/domain"
)

var timelineColumns = []string{
	"id", "title", "organization", "description", "start_date", "end_date", "type",
	"order_index", "created_at", "updated_at",
}

type timelineRepository struct {
	orderedTable
}

// NewTimelineRepository creates a new PostgreSQL timeline repository
func NewTimelineRepository(db *sql.DB) domain.TimelineRepository {
	return &timelineRepository{orderedTable{db: db, table: domain.TableTimelineItems, entity: "timeline item"}}
}

func (r *timelineRepository) List(ctx context.Context) ([]*domain.TimelineItem, error) {
	query, args, err := r.selectOrdered(timelineColumns...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline items: %w", err)
	}
	defer rows.Close()

	items := []*domain.TimelineItem{}
	for rows.Next() {
		item, err := domain.ScanTimelineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeline rows: %w", err)
	}
	return items, nil
}

func (r *timelineRepository) GetByID(ctx context.Context, id string) (*domain.TimelineItem, error) {
	query, args, err := psql.Select(timelineColumns...).From(r.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := domain.ScanTimelineItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("timeline item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline item: %w", err)
	}
	return item, nil
}

func (r *timelineRepository) Create(ctx context.Context, item *domain.TimelineItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query, args, err := psql.Insert(r.table).
		Columns(timelineColumns...).
		Values(
			item.ID,
			item.Title,
			item.Organization,
			item.Description,
			item.StartDate,
			item.EndDate,
			string(item.Kind),
			item.OrderIndex,
			item.CreatedAt,
			item.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create timeline item: %w", err)
	}
	return nil
}

func (r *timelineRepository) Update(ctx context.Context, item *domain.TimelineItem) error {
	item.UpdatedAt = time.Now().UTC()

	builder := psql.Update(r.table).
		Set("title", item.Title).
		Set("organization", item.Organization).
		Set("description", item.Description).
		Set("start_date", item.StartDate).
		Set("end_date", item.EndDate).
		Set("type", string(item.Kind)).
		Set("updated_at", item.UpdatedAt)
	if item.OrderIndex >= 0 {
		builder = builder.Set("order_index", item.OrderIndex)
	}

	query, args, err := builder.Where(sq.Eq{"id": item.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update timeline item: %w", err)
	}
	return requireAffected(result, "timeline item", item.ID)
}
