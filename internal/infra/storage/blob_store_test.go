package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) (*blobMediaStore, context.Context) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	store := NewMediaStoreWithBucket(bucket, "https://cdn.example.com/")
	t.Cleanup(func() { _ = store.Close() })

	return store.(*blobMediaStore), context.Background()
}

func TestBlobMediaStore_UploadReturnsPublicURL(t *testing.T) {
	store, ctx := newTestStore(t)

	url, err := store.Upload(ctx, "products/p1/photo.jpg", []byte("IMG"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/p1/photo.jpg", url)

	// Uploaded bytes are retrievable content-equal.
	data, err := store.bucket.ReadAll(ctx, "products/p1/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("IMG"), data)
}

func TestBlobMediaStore_ListScopedByPrefix(t *testing.T) {
	store, ctx := newTestStore(t)

	_, err := store.Upload(ctx, "products/p1/photo.jpg", []byte("a"), "image/jpeg")
	require.NoError(t, err)
	_, err = store.Upload(ctx, "products/p1/qr.png", []byte("b"), "image/png")
	require.NoError(t, err)
	_, err = store.Upload(ctx, "products/p2/photo.jpg", []byte("c"), "image/jpeg")
	require.NoError(t, err)

	keys, err := store.List(ctx, "products/p1/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"products/p1/photo.jpg", "products/p1/qr.png"}, keys)
}

func TestBlobMediaStore_DeletePrefix(t *testing.T) {
	store, ctx := newTestStore(t)

	_, err := store.Upload(ctx, "products/p1/photo.jpg", []byte("a"), "image/jpeg")
	require.NoError(t, err)
	_, err = store.Upload(ctx, "products/p1/qr.png", []byte("b"), "image/png")
	require.NoError(t, err)
	_, err = store.Upload(ctx, "products/p2/photo.jpg", []byte("c"), "image/jpeg")
	require.NoError(t, err)

	deleted, err := store.DeletePrefix(ctx, "products/p1/")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Prefix scan returns empty after delete; sibling prefixes untouched.
	keys, err := store.List(ctx, "products/p1/")
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = store.List(ctx, "products/p2/")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestBlobMediaStore_DeletePrefixEmpty(t *testing.T) {
	store, ctx := newTestStore(t)

	deleted, err := store.DeletePrefix(ctx, "products/missing/")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
