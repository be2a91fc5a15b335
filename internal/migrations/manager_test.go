package migrations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/pkg/logger"
)

type fakeMigration struct {
	version float64
	err     error
	ran     bool
}

func (m *fakeMigration) GetMajorVersion() float64 { return m.version }
func (m *fakeMigration) Description() string      { return "fake" }
func (m *fakeMigration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	m.ran = true
	if m.err != nil {
		return m.err
	}
	_, err := db.ExecContext(ctx, "ALTER TABLE fake")
	return err
}

func newTestManager(t *testing.T, codeVersion float64, migrations ...MajorMigrationInterface) *Manager {
	registry := NewRegistry()
	for _, mig := range migrations {
		registry.Register(mig)
	}
	m := NewManagerWithRegistry(logger.NewTestLogger(t), registry)
	m.codeVersion = func() (float64, error) { return codeVersion, nil }
	return m
}

const versionQuery = "SELECT value FROM app_settings WHERE key = 'db_version'"

func TestManager_GetCurrentDBVersion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := newTestManager(t, 2)
	ctx := context.Background()

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))
	version, err, exists := m.GetCurrentDBVersion(ctx, db)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 2.0, version)

	mock.ExpectQuery(versionQuery).WillReturnError(sql.ErrNoRows)
	_, err, exists = m.GetCurrentDBVersion(ctx, db)
	assert.NoError(t, err)
	assert.False(t, exists)

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("two"))
	_, err, _ = m.GetCurrentDBVersion(ctx, db)
	assert.ErrorContains(t, err, "invalid database version format")

	mock.ExpectQuery(versionQuery).WillReturnError(errors.New("relation does not exist"))
	_, err, _ = m.GetCurrentDBVersion(ctx, db)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_SetCurrentDBVersion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := newTestManager(t, 2)

	mock.ExpectExec("INSERT INTO app_settings").WithArgs("2").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, m.SetCurrentDBVersion(context.Background(), db, 2))

	mock.ExpectExec("INSERT INTO app_settings").WithArgs("3").WillReturnError(errors.New("boom"))
	assert.Error(t, m.SetCurrentDBVersion(context.Background(), db, 3))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_FirstBootReplaysFromBaseline(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	v2 := &fakeMigration{version: 2}
	v3 := &fakeMigration{version: 3}
	future := &fakeMigration{version: 4}
	m := newTestManager(t, 3, v3, v2, future)

	mock.ExpectQuery(versionQuery).WillReturnError(sql.ErrNoRows)
	mock.ExpectBegin()
	mock.ExpectExec("ALTER TABLE fake").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("ALTER TABLE fake").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO app_settings").WithArgs("3").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, m.RunMigrations(context.Background(), &config.Config{}, db))
	assert.True(t, v2.ran)
	assert.True(t, v3.ran)
	assert.False(t, future.ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_UpToDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	v2 := &fakeMigration{version: 2}
	m := newTestManager(t, 2, v2)

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))

	require.NoError(t, m.RunMigrations(context.Background(), &config.Config{}, db))
	assert.False(t, v2.ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_FirstBootAtBaseline(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := newTestManager(t, 1)

	mock.ExpectQuery(versionQuery).WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO app_settings").WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, m.RunMigrations(context.Background(), &config.Config{}, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_FailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	failing := &fakeMigration{version: 2, err: errors.New("syntax error")}
	m := newTestManager(t, 2, failing)

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = m.RunMigrations(context.Background(), &config.Config{}, db)
	assert.ErrorContains(t, err, "migration failed for version 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_CodeVersionError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := newTestManager(t, 2)
	m.codeVersion = func() (float64, error) { return 0, errors.New("bad version") }

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))
	assert.Error(t, m.RunMigrations(context.Background(), &config.Config{}, db))
}

func TestV2Migration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &V2Migration{}
	assert.Equal(t, 2.0, m.GetMajorVersion())
	assert.NotEmpty(t, m.Description())

	for range v2Statements {
		mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	require.NoError(t, m.Up(context.Background(), &config.Config{}, db))

	mock.ExpectExec("").WillReturnError(errors.New("permission denied"))
	assert.ErrorContains(t, m.Up(context.Background(), &config.Config{}, db), "failed to upgrade legacy columns")
	assert.NoError(t, mock.ExpectationsWereMet())

	_, registered := DefaultRegistry.GetMigration(2)
	assert.True(t, registered)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeMigration{version: 3})
	r.Register(&fakeMigration{version: 2})
	r.Register(&fakeMigration{version: 3, err: errors.New("replacement")})

	migrations := r.GetMigrations()
	require.Len(t, migrations, 2)
	assert.Equal(t, 2.0, migrations[0].GetMajorVersion())
	assert.Equal(t, 3.0, migrations[1].GetMajorVersion())

	_, ok := r.GetMigration(5)
	assert.False(t, ok)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
		wantErr  bool
	}{
		{in: "v3.14", expected: 3},
		{in: "2.0", expected: 2},
		{in: "5", expected: 5},
		{in: "1.2.3", expected: 1},
		{in: "", wantErr: true},
		{in: "abc.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	code, err := GetCurrentCodeVersion()
	require.NoError(t, err)
	assert.Equal(t, 2.0, code)
}
