package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Set(ctx, "users", []string{"a", "b"}))

	var got []string
	found, err := s.Get(ctx, "users", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSQLiteAbsentKey(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	var got string
	found, err := s.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteOverwriteAndRemove(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Set(ctx, "k", "old"))
	require.NoError(t, s.Set(ctx, "k", "new"))

	var got string
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", got)

	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"))
	found, err = s.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteMalformedValueReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	_, err := s.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, "users", []byte("{not json"))
	require.NoError(t, err)

	var got []string
	found, err := s.Get(ctx, "users", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
