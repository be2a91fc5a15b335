package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rllL1/portfolio/internal/domain"
)

var contactMessageColumns = []string{"id", "name", "email", "subject", "message", "is_read", "created_at"}

type contactMessageRepository struct {
	db *sql.DB
}

// NewContactMessageRepository creates a new PostgreSQL contact message repository
func NewContactMessageRepository(db *sql.DB) domain.ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.CreatedAt = time.Now().UTC()

	query, args, err := psql.Insert(domain.TableContactMessages).
		Columns(contactMessageColumns...).
		Values(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Read, msg.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *contactMessageRepository) List(ctx context.Context, limit int) ([]*domain.ContactMessage, error) {
	builder := psql.Select(contactMessageColumns...).
		From(domain.TableContactMessages).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.ContactMessage{}
	for rows.Next() {
		msg, err := domain.ScanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", err)
	}
	return messages, nil
}

// MarkRead is idempotent; an already read message still counts as found
func (r *contactMessageRepository) MarkRead(ctx context.Context, id string) error {
	query, args, err := psql.Update(domain.TableContactMessages).
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark contact message as read: %w", err)
	}
	return requireAffected(result, "contact message", id)
}

func (r *contactMessageRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete(domain.TableContactMessages).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return requireAffected(result, "contact message", id)
}

func (r *contactMessageRepository) Count(ctx context.Context, unreadOnly bool) (int, error) {
	builder := psql.Select("COUNT(*)").From(domain.TableContactMessages)
	if unreadOnly {
		builder = builder.Where(sq.Eq{"is_read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}
