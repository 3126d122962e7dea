package store

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Import cloud drivers for production use
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStore implements Store using gocloud.dev/blob.
// This supports GCS, S3, Azure, and other cloud storage providers.
type BlobStore struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobStore creates a new blob-backed store.
// bucketURL should be in the format "gs://bucket-name" for GCS.
// prefix is an optional path prefix for all refs.
func NewBlobStore(ctx context.Context, bucketURL, prefix string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(ErrStoreUnavailable, err.Error())
	}
	return NewBlobStoreFromBucket(bucket, prefix), nil
}

// NewBlobStoreFromBucket creates a new blob-backed store from an existing
// bucket. This is useful for testing with memblob.
func NewBlobStoreFromBucket(bucket *blob.Bucket, prefix string) *BlobStore {
	// Normalize prefix: ensure trailing slash if non-empty
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}
	return &BlobStore{
		bucket: bucket,
		prefix: prefix,
	}
}

func (b *BlobStore) fullKey(ref FileRef) string {
	if b.prefix == "" {
		return string(ref)
	}
	return b.prefix + string(ref)
}

// Put writes data under the given ref. Not part of the Store contract.
func (b *BlobStore) Put(ctx context.Context, ref FileRef, data []byte) error {
	return b.bucket.WriteAll(ctx, b.fullKey(ref), data, nil)
}

func (b *BlobStore) List(ctx context.Context) ([]FileRef, error) {
	iter := b.bucket.List(&blob.ListOptions{
		Prefix: b.prefix,
	})

	var refs []FileRef
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrStoreUnavailable, err.Error())
		}
		key := obj.Key
		if b.prefix != "" {
			// Skip keys that don't have our prefix (shouldn't happen, but be safe)
			if !strings.HasPrefix(key, b.prefix) {
				continue
			}
			key = strings.TrimPrefix(key, b.prefix)
		}
		refs = append(refs, FileRef(key))
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs, nil
}

func (b *BlobStore) Delete(ctx context.Context, ref FileRef) error {
	if err := b.bucket.Delete(ctx, b.fullKey(ref)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return errors.Wrapf(ErrNotFound, "ref %q", ref)
		}
		return errors.Wrap(ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (b *BlobStore) Close() error {
	return b.bucket.Close()
}
