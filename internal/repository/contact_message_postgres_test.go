package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/repository/testutil"
)

func TestContactMessageRepository_CreateAndList(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO contact_messages \(id,name,email,subject,message,is_read,created_at\)`).
		WithArgs("m1", "Jane", "jane@example.com", nil, "Hello", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg := &domain.ContactMessage{ID: "m1", Name: "Jane", Email: "jane@example.com", Message: "Hello"}
	require.NoError(t, repo.Create(ctx, msg))
	assert.False(t, msg.CreatedAt.IsZero())

	t.Run("newest first with limit", func(t *testing.T) {
		rows := testutil.ContactMessageRows().
			AddRow("m2", "Bob", "bob@example.com", "Hi", "Second", false, testutil.FixedTime).
			AddRow("m1", "Jane", "jane@example.com", nil, "Hello", true, testutil.FixedTime)
		mock.ExpectQuery(`SELECT .* FROM contact_messages ORDER BY created_at DESC LIMIT 5`).WillReturnRows(rows)

		messages, err := repo.List(ctx, 5)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		require.NotNil(t, messages[0].Subject)
		assert.Equal(t, "Hi", *messages[0].Subject)
		assert.True(t, messages[1].Read)
	})

	t.Run("no limit", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM contact_messages ORDER BY created_at DESC$`).WillReturnRows(testutil.ContactMessageRows())

		messages, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMessageRepository_MarkReadDeleteCount(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE contact_messages SET is_read = \$1 WHERE id = \$2`).
		WithArgs(true, "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.MarkRead(ctx, "m1"))

	mock.ExpectExec(`UPDATE contact_messages`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, domain.IsNotFound(repo.MarkRead(ctx, "ghost")))

	mock.ExpectExec(`DELETE FROM contact_messages WHERE id = \$1`).WithArgs("m1").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, "m1"))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contact_messages WHERE is_read = \$1`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	unread, err := repo.Count(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 3, unread)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contact_messages$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	total, err := repo.Count(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}
