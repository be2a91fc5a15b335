package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rllL1/portfolio/internal/domain"
)

var chatMessageColumns = []string{"id", "sender_name", "sender_email", "message", "sender_kind", "created_at"}

type chatMessageRepository struct {
	db *sql.DB
}

// NewChatMessageRepository creates a new PostgreSQL live chat repository
func NewChatMessageRepository(db *sql.DB) domain.ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	msg.CreatedAt = time.Now().UTC()

	query, args, err := psql.Insert(domain.TableChatMessages).
		Columns(chatMessageColumns...).
		Values(msg.ID, msg.SenderName, msg.SenderEmail, msg.Message, string(msg.SenderKind), msg.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

func (r *chatMessageRepository) List(ctx context.Context) ([]*domain.ChatMessage, error) {
	query, args, err := psql.Select(chatMessageColumns...).
		From(domain.TableChatMessages).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.ChatMessage{}
	for rows.Next() {
		msg, err := domain.ScanChatMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat message rows: %w", err)
	}
	return messages, nil
}

func (r *chatMessageRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete(domain.TableChatMessages).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete chat message: %w", err)
	}
	return requireAffected(result, "chat message", id)
}

func (r *chatMessageRepository) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(domain.TableChatMessages).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return count, nil
}
