package pgsql

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	assert.Equal(t, ups, downs)
}

func TestInitMigration_TenantScopedForeignKeys(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	sql := string(body)

	for _, fk := range []string{
		"FOREIGN KEY (tenant_id, account_id) REFERENCES accounts (tenant_id, account_id)",
		"FOREIGN KEY (tenant_id, category_id) REFERENCES categories (tenant_id, category_id)",
		"FOREIGN KEY (tenant_id, person_id) REFERENCES people (tenant_id, person_id) ON DELETE SET NULL (person_id)",
		"FOREIGN KEY (tenant_id, parent_id) REFERENCES categories (tenant_id, category_id)",
	} {
		assert.Contains(t, sql, fk)
	}
	assert.Contains(t, sql, "CHECK (amount > 0)")
}
