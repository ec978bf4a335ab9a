package repositories

import (
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func newTestDbContext(t *testing.T) *DbContext {
	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() {
		_ = dbCtx.Close()
	})
	return dbCtx
}

func intPtr(v int) *int {
	return &v
}
