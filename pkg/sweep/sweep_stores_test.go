package sweep_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/foomo/storesweep/pkg/store"
	"github.com/foomo/storesweep/pkg/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func TestDeleteAll_FilesystemStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.NewFilesystemStore(t.TempDir())
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		require.NoError(t, st.Put(ctx, store.FileRef(fmt.Sprintf("file-%02d", i)), []byte("data")))
	}

	s := newTestSweeper(t, sweep.WithBatchSize(5))

	res, err := s.DeleteAll(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Deleted)
	assert.Equal(t, 3, res.Pages)

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestDeleteAll_BlobStore(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	st := store.NewBlobStoreFromBucket(bucket, "backups/")
	for i := 0; i < 12; i++ {
		require.NoError(t, st.Put(ctx, store.FileRef(fmt.Sprintf("file-%02d", i)), []byte("data")))
	}

	s := newTestSweeper(t, sweep.WithBatchSize(5))

	res, err := s.DeleteAll(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Deleted)
	assert.Equal(t, 3, res.Pages)

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)
}
