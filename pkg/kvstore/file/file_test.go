package file_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore/file"
)

func TestStoragePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := file.New(file.Options{Dir: dir, Origin: "http://localhost:8080"})
	require.NoError(t, err)

	require.NoError(t, s.SetItem(ctx, "todo-items-v2", `[{"text":"Buy milk"}]`))

	reopened, err := file.New(file.Options{Dir: dir, Origin: "http://localhost:8080"})
	require.NoError(t, err)
	v, ok, err := reopened.GetItem(ctx, "todo-items-v2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"Buy milk"}]`, v)
}

func TestStorageIsOriginScoped(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	a, err := file.New(file.Options{Dir: dir, Origin: "http://a.local"})
	require.NoError(t, err)
	b, err := file.New(file.Options{Dir: dir, Origin: "http://b.local"})
	require.NoError(t, err)

	require.NoError(t, a.SetItem(ctx, "k", "from-a"))
	_, ok, err := b.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEqual(t, a.Path(), b.Path())
}

func TestStorageQuota(t *testing.T) {
	ctx := context.Background()
	s, err := file.New(file.Options{Dir: t.TempDir(), Quota: 4})
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetItem(ctx, "key", "value"), kvstore.ErrQuotaExceeded)
}

func TestStorageCorruptDocument(t *testing.T) {
	ctx := context.Background()
	s, err := file.New(file.Options{Dir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, _, err = s.GetItem(ctx, "todo-items-v2")
	assert.ErrorIs(t, err, file.ErrCorrupt)

	require.NoError(t, s.SetItem(ctx, "todo-items-v2", `[{"text":"Buy milk"}]`))

	v, ok, err := s.GetItem(ctx, "todo-items-v2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"Buy milk"}]`, v)

	kept, err := os.ReadFile(s.CorruptPath())
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(kept))
}

func TestNewRequiresDir(t *testing.T) {
	_, err := file.New(file.Options{})
	assert.Error(t, err)
}
