package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableDefinitionsAreIdempotent(t *testing.T) {
	for _, stmt := range TableDefinitions {
		assert.Contains(t, stmt, "IF NOT EXISTS")
	}
	for _, stmt := range SeedStatements {
		assert.Contains(t, stmt, "WHERE NOT EXISTS")
	}
}

func TestEveryTableHasADefinition(t *testing.T) {
	all := strings.Join(TableDefinitions, "\n")
	for _, table := range TableNames {
		assert.Contains(t, all, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestTriggerStatements(t *testing.T) {
	stmts := TriggerStatements()
	assert.Len(t, stmts, len(TableNames)*2+1)
	assert.Contains(t, stmts[0], "pg_notify('portfolio_changes'")
	assert.Contains(t, stmts[0], "octet_length(payload::text) > 7900")
	assert.Equal(t, "DROP TRIGGER IF EXISTS projects_notify_change ON projects", stmts[1])
	assert.Contains(t, stmts[2], "AFTER INSERT OR UPDATE OR DELETE ON projects")
}
