package migrations

import (
	"sort"
	"sync"
)

// DefaultRegistry holds the migrations registered from init functions
var DefaultRegistry = NewRegistry()

// MigrationRegistryImpl implements MigrationRegistry
type MigrationRegistryImpl struct {
	mu         sync.RWMutex
	migrations map[float64]MajorMigrationInterface
}

func NewRegistry() *MigrationRegistryImpl {
	return &MigrationRegistryImpl{
		migrations: make(map[float64]MajorMigrationInterface),
	}
}

// Register adds a migration, replacing any previous one with the same version
func (r *MigrationRegistryImpl) Register(migration MajorMigrationInterface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrations[migration.GetMajorVersion()] = migration
}

// GetMigrations returns all registered migrations sorted by version
func (r *MigrationRegistryImpl) GetMigrations() []MajorMigrationInterface {
	r.mu.RLock()
	defer r.mu.RUnlock()

	migrations := make([]MajorMigrationInterface, 0, len(r.migrations))
	for _, migration := range r.migrations {
		migrations = append(migrations, migration)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].GetMajorVersion() < migrations[j].GetMajorVersion()
	})

	return migrations
}

func (r *MigrationRegistryImpl) GetMigration(version float64) (MajorMigrationInterface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	migration, exists := r.migrations[version]
	return migration, exists
}

// Register is a convenience function to register migrations with the default registry
func Register(migration MajorMigrationInterface) {
	DefaultRegistry.Register(migration)
}
