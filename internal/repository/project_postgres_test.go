package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/repository/testutil"
)

func TestProjectRepository_List(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	t.Run("returns projects in order", func(t *testing.T) {
		rows := testutil.ProjectRows()
		testutil.AddProject(rows, "p1", "Library System", "{PHP,MySQL}", 0)
		testutil.AddProject(rows, "p2", "Docs Site", "{}", 1)

		mock.ExpectQuery(`SELECT id, title, description, tech_stack, .* FROM projects ORDER BY order_index ASC, created_at ASC`).
			WillReturnRows(rows)

		projects, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "Library System", projects[0].Title)
		assert.Equal(t, domain.StringList{"PHP", "MySQL"}, projects[0].TechStack)
		assert.Equal(t, domain.StringList{}, projects[1].TechStack)
		assert.Nil(t, projects[0].GithubURL)
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM projects`).WillReturnRows(testutil.ProjectRows())

		projects, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM projects`).WillReturnError(errors.New("connection reset"))

		_, err := repo.List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list projects")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_GetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .* FROM projects WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(testutil.AddProject(testutil.ProjectRows(), "p1", "Library", "{Go}", 3))

	project, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, project.OrderIndex)

	mock.ExpectQuery(`SELECT .* FROM projects WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	github := "https://github.com/rllL1/library"

	project := &domain.Project{
		ID:         "p1",
		Title:      "Library",
		TechStack:  domain.StringList{"Go"},
		GithubURL:  &github,
		OrderIndex: 2,
	}

	mock.ExpectExec(`INSERT INTO projects \(id,title,description,tech_stack,github_url,live_url,image_url,order_index,created_at,updated_at\)`).
		WithArgs("p1", "Library", nil, "{\"Go\"}", github, nil, nil, 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), project)
	require.NoError(t, err)
	assert.False(t, project.CreatedAt.IsZero())
	assert.Equal(t, project.CreatedAt, project.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	t.Run("keeps position when order index is negative", func(t *testing.T) {
		mock.ExpectExec(`UPDATE projects SET title = \$1, description = \$2, tech_stack = \$3, github_url = \$4, live_url = \$5, image_url = \$6, updated_at = \$7 WHERE id = \$8`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Project{ID: "p1", Title: "Library", OrderIndex: domain.AppendOrder})
		assert.NoError(t, err)
	})

	t.Run("sets order index when given", func(t *testing.T) {
		mock.ExpectExec(`UPDATE projects SET .*order_index = \$8 WHERE id = \$9`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Project{ID: "p1", Title: "Library", OrderIndex: 4})
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE projects`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Project{ID: "nope", Title: "x", OrderIndex: -1})
		assert.True(t, domain.IsNotFound(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_DeleteAndCount(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, "p1"))

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, domain.IsNotFound(repo.Delete(ctx, "p1")))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Reorder(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	t.Run("rewrites every position in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE projects SET order_index = \$1, updated_at = \$2 WHERE id = \$3`).
			WithArgs(0, sqlmock.AnyArg(), "b").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE projects SET order_index = \$1, updated_at = \$2 WHERE id = \$3`).
			WithArgs(1, sqlmock.AnyArg(), "a").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Reorder(ctx, []string{"b", "a"}))
	})

	t.Run("unknown id rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE projects`).WithArgs(0, sqlmock.AnyArg(), "a").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE projects`).WithArgs(1, sqlmock.AnyArg(), "ghost").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Reorder(ctx, []string{"a", "ghost"})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("begin failure", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := repo.Reorder(ctx, []string{"a"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
