package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/foomo/storesweep/pkg/store"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// blobProviders maps supported bucket URL schemes to provider names
var blobProviders = map[string]string{
	"gs://":     "Google Cloud Storage",
	"s3://":     "AWS S3",
	"azblob://": "Azure Blob Storage",
}

// createStore builds the store to sweep from the configured flags
func createStore(ctx context.Context, v *viper.Viper, l *zap.Logger) (store.Store, error) {
	storageType := storageTypeFlag(v)
	blobBucket := storageBlobBucketFlag(v)
	blobPrefix := storageBlobPrefixFlag(v)

	if storageType != "blob" && (blobBucket != "" || blobPrefix != "") {
		l.Warn("ignoring blob flags for non-blob storage type",
			zap.String("storage-type", storageType),
		)
	}

	switch storageType {
	case "blob":
		if blobBucket == "" {
			return nil, fmt.Errorf("storage-type %q requires a bucket URL, set --storage-blob-bucket", storageType)
		}
		provider, ok := blobProvider(blobBucket)
		if !ok {
			return nil, fmt.Errorf("bucket URL %q has an unsupported scheme, want one of gs://, s3://, azblob://", blobBucket)
		}
		l.Info("opening blob store",
			zap.String("bucket", blobBucket),
			zap.String("prefix", blobPrefix),
			zap.String("provider", provider),
		)
		return store.NewBlobStore(ctx, blobBucket, blobPrefix)
	case "filesystem", "":
		dir := storageDirFlag(v)
		l.Info("opening filesystem store", zap.String("dir", dir))
		return store.NewFilesystemStore(dir)
	default:
		return nil, fmt.Errorf("unsupported storage type %q, want filesystem or blob", storageType)
	}
}

// blobProvider resolves a bucket URL to its provider name by scheme
func blobProvider(bucketURL string) (string, bool) {
	for scheme, provider := range blobProviders {
		if strings.HasPrefix(bucketURL, scheme) {
			return provider, true
		}
	}
	return "", false
}
