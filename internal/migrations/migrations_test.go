package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	entries, err := fs.ReadDir(MigrationFiles, ".")
	require.NoError(t, err)

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
	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs, "every up migration needs a down migration")

	up, err := fs.ReadFile(MigrationFiles, "000001_create_events.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"events", "addresses", "coupons"} {
		require.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
