package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore_RoundTrip(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key := "case-1/f1-logs.txt"
	require.NoError(t, store.Upload(ctx, key, []byte("OOMKilled"), "text/plain"))

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := store.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("OOMKilled"), data)

	require.NoError(t, store.Delete(ctx, key))
	exists, err = store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalFileStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "case-1/nope.txt"))
}

func TestLocalFileStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../escape.txt", "..", ".", "/etc/passwd", "a/../../b"} {
		assert.Error(t, store.Upload(ctx, key, []byte("x"), ""), "key %q", key)
		_, err := store.Download(ctx, key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestLocalFileStore_URL(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.URL(context.Background(), "case-1/f1-logs.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/case-1/f1-logs.txt", url)
}
