package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Set(ctx, "k", doc{Name: "a", Count: 2}))

	var got doc
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, doc{Name: "a", Count: 2}, got)
}

func TestMemoryAbsentKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	var got string
	found, err := s.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryMalformedValueReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	s.data["users"] = []byte("{not json")

	var got []string
	found, err := s.Get(ctx, "users", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryTypeMismatchReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Set(ctx, "k", "a string"))

	var got []int
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemorySetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Set(ctx, "k", "old"))
	require.NoError(t, s.Set(ctx, "k", "new"))

	var got string
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", got)
}

func TestMemoryRemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"))

	var got string
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
