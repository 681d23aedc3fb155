package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchemaAndSurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "recondesk.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopen: migrations must be idempotent and data durable.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key='token'`).Scan(&v))
	require.Equal(t, "abc", v)
}
