package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMockDB(t *testing.T) {
	t.Run("creates mock DB successfully", func(t *testing.T) {
		db, mock, cleanup := SetupMockDB(t)
		defer cleanup()

		require.NotNil(t, db)
		require.NotNil(t, mock)
		assert.IsType(t, (*sql.DB)(nil), db)
	})

	t.Run("cleanup closes database", func(t *testing.T) {
		db, _, cleanup := SetupMockDB(t)

		assert.NoError(t, db.Ping())
		cleanup()
		assert.Error(t, db.Ping())
	})
}

func TestProjectRows(t *testing.T) {
	db, mock, cleanup := SetupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnRows(AddProject(ProjectRows(), "p1", "Library", "{Go}", 0))

	rows, err := db.Query("SELECT * FROM projects")
	require.NoError(t, err)
	defer rows.Close()

	cols, err := rows.Columns()
	require.NoError(t, err)
	assert.Len(t, cols, 10)
	assert.True(t, rows.Next())
	assert.NoError(t, mock.ExpectationsWereMet())
}
