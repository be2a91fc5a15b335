package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// SetupMockDB creates a mock database connection for testing
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, cleanup
}

// FixedTime is the timestamp used by the row builders below
var FixedTime = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

// ProjectRows returns an empty result set with the project columns
func ProjectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "tech_stack", "github_url", "live_url", "image_url",
		"order_index", "created_at", "updated_at",
	})
}

// AddProject appends a project row; tech is the text[] literal, e.g. {Go,React}
func AddProject(rows *sqlmock.Rows, id, title, tech string, order int) *sqlmock.Rows {
	return rows.AddRow(id, title, "desc", tech, nil, nil, nil, order, FixedTime, FixedTime)
}

func SkillRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "category", "icon", "order_index", "created_at", "updated_at"})
}

func TimelineRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "organization", "description", "start_date", "end_date", "type",
		"order_index", "created_at", "updated_at",
	})
}

func ContactMessageRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "is_read", "created_at"})
}

func ChatMessageRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "sender_name", "sender_email", "message", "sender_kind", "created_at"})
}
