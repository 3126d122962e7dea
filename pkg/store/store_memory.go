package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemoryStore implements Store on a plain slice of refs. List hands out a
// full copy, Delete is a linear search-and-remove.
type MemoryStore struct {
	refs        []FileRef
	unavailable bool
	mu          sync.RWMutex
}

// NewMemoryStore creates a memory-backed store holding the given refs.
func NewMemoryStore(refs ...FileRef) *MemoryStore {
	return &MemoryStore{refs: append([]FileRef{}, refs...)}
}

// NewSeededMemoryStore creates a memory-backed store seeded with n
// uniquely generated refs.
func NewSeededMemoryStore(n int) *MemoryStore {
	refs := make([]FileRef, n)
	for i := range refs {
		refs[i] = FileRef(uuid.New().String())
	}
	return &MemoryStore{refs: refs}
}

// Add appends refs to the store.
func (m *MemoryStore) Add(refs ...FileRef) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs = append(m.refs, refs...)
}

// SetUnavailable toggles outage simulation: while set, List and Delete
// fail with ErrStoreUnavailable.
func (m *MemoryStore) SetUnavailable(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = v
}

func (m *MemoryStore) List(_ context.Context) ([]FileRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.unavailable {
		return nil, ErrStoreUnavailable
	}
	return append([]FileRef{}, m.refs...), nil
}

func (m *MemoryStore) Delete(_ context.Context, ref FileRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unavailable {
		return ErrStoreUnavailable
	}
	for i, r := range m.refs {
		if r == ref {
			m.refs = append(m.refs[:i], m.refs[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "ref %q", ref)
}

func (m *MemoryStore) Close() error {
	return nil
}
