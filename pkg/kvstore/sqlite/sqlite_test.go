package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore/sqlite"
)

func newStorage(t *testing.T, origin string, quota int64) (*sqlite.Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.db")
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	s, err := sqlite.New(db, sqlite.Options{Origin: origin, Quota: quota})
	require.NoError(t, err)
	return s, path
}

func TestStorage(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage(t, "http://localhost:8080", 0)

	_, ok, err := s.GetItem(ctx, "todo-items-v2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem(ctx, "todo-items-v2", "[]"))
	require.NoError(t, s.SetItem(ctx, "todo-items-v2", `[{"text":"Buy milk"}]`))

	v, ok, err := s.GetItem(ctx, "todo-items-v2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"Buy milk"}]`, v)
}

func TestStorageIsOriginScoped(t *testing.T) {
	ctx := context.Background()
	a, path := newStorage(t, "http://a.local", 0)

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	b, err := sqlite.New(db, sqlite.Options{Origin: "http://b.local"})
	require.NoError(t, err)

	require.NoError(t, a.SetItem(ctx, "k", "from-a"))
	_, ok, err := b.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageQuota(t *testing.T) {
	ctx := context.Background()
	s, _ := newStorage(t, "", 6)

	require.NoError(t, s.SetItem(ctx, "k", "12345"))
	assert.ErrorIs(t, s.SetItem(ctx, "k", "123456"), kvstore.ErrQuotaExceeded)

	v, _, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "12345", v)
}
