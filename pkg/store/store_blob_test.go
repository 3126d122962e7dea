package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func newTestBlobStore(t *testing.T, prefix string) *BlobStore {
	t.Helper()
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })
	return NewBlobStoreFromBucket(bucket, prefix)
}

func TestBlobStore_List(t *testing.T) {
	ctx := context.Background()
	st := newTestBlobStore(t, "")

	require.NoError(t, st.Put(ctx, "file-b", []byte("b")))
	require.NoError(t, st.Put(ctx, "file-a", []byte("a")))
	require.NoError(t, st.Put(ctx, "file-c", []byte("c")))

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []FileRef{"file-a", "file-b", "file-c"}, refs)
}

func TestBlobStore_List_Empty(t *testing.T) {
	ctx := context.Background()
	st := newTestBlobStore(t, "")

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestBlobStore_List_WithPrefix(t *testing.T) {
	ctx := context.Background()
	st := newTestBlobStore(t, "sweep-me/")

	require.NoError(t, st.Put(ctx, "file-a", []byte("a")))
	require.NoError(t, st.Put(ctx, "file-b", []byte("b")))

	// an object outside the prefix is invisible to the store
	require.NoError(t, st.bucket.WriteAll(ctx, "keep/file-c", []byte("c"), nil))

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []FileRef{"file-a", "file-b"}, refs)
}

func TestBlobStore_Delete(t *testing.T) {
	ctx := context.Background()
	st := newTestBlobStore(t, "")

	require.NoError(t, st.Put(ctx, "file-a", []byte("a")))

	err := st.Delete(ctx, "file-a")
	require.NoError(t, err)

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestBlobStore_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestBlobStore(t, "")

	err := st.Delete(ctx, "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlobStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)

	st := NewBlobStoreFromBucket(bucket, "")
	require.NoError(t, st.Put(ctx, "file-a", []byte("a")))
	require.NoError(t, st.Close())

	// a closed bucket is a backend outage, not a missing ref
	_, err = st.List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = st.Delete(ctx, "file-a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestBlobStore_Delete_WithPrefix(t *testing.T) {
	ctx := context.Background()
	st := newTestBlobStore(t, "sweep-me")

	require.NoError(t, st.Put(ctx, "file-a", []byte("a")))

	err := st.Delete(ctx, "file-a")
	require.NoError(t, err)

	// the prefixed key is gone from the bucket
	exists, err := st.bucket.Exists(ctx, "sweep-me/file-a")
	require.NoError(t, err)
	assert.False(t, exists)
}
