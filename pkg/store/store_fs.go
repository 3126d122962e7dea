package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// FilesystemStore implements Store on a local directory. Every regular
// file directly below the base directory is one item, its name the ref.
type FilesystemStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFilesystemStore creates a new filesystem-backed store.
func NewFilesystemStore(baseDir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, err
	}
	return &FilesystemStore{baseDir: baseDir}, nil
}

// Put writes data under the given ref. Not part of the Store contract.
func (f *FilesystemStore) Put(_ context.Context, ref FileRef, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return os.WriteFile(filepath.Join(f.baseDir, string(ref)), data, 0600)
}

// List returns the refs of all files in the base directory (non-recursive).
// Refs must not contain path separators for correct behavior.
func (f *FilesystemStore) List(_ context.Context) ([]FileRef, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries, err := os.ReadDir(f.baseDir)
	if err != nil {
		return nil, errors.Wrap(ErrStoreUnavailable, err.Error())
	}

	var refs []FileRef
	for _, entry := range entries {
		if !entry.IsDir() {
			refs = append(refs, FileRef(entry.Name()))
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs, nil
}

func (f *FilesystemStore) Delete(_ context.Context, ref FileRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(filepath.Join(f.baseDir, string(ref)))
	if os.IsNotExist(err) {
		return errors.Wrapf(ErrNotFound, "ref %q", ref)
	}
	if err != nil {
		return errors.Wrap(ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (f *FilesystemStore) Close() error {
	return nil
}
