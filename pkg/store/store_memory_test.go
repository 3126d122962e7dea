package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore("a", "b", "c")

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []FileRef{"a", "b", "c"}, refs)
}

func TestMemoryStore_List_Copy(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore("a", "b", "c")

	refs, err := st.List(ctx)
	require.NoError(t, err)

	// mutating the snapshot must not affect the store
	refs[0] = "z"

	refs, err = st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []FileRef{"a", "b", "c"}, refs)
}

func TestMemoryStore_Seeded(t *testing.T) {
	ctx := context.Background()
	st := NewSeededMemoryStore(100)

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, refs, 100)

	// all refs are unique
	seen := map[FileRef]bool{}
	for _, ref := range refs {
		assert.False(t, seen[ref])
		seen[ref] = true
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore("a", "b", "c")

	err := st.Delete(ctx, "b")
	require.NoError(t, err)

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []FileRef{"a", "c"}, refs)
}

func TestMemoryStore_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore("a")

	err := st.Delete(ctx, "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.Delete(ctx, "a")
	require.NoError(t, err)

	// deleting again fails
	err = st.Delete(ctx, "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore("a")
	st.SetUnavailable(true)

	_, err := st.List(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = st.Delete(ctx, "a")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	st.SetUnavailable(false)

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []FileRef{"a"}, refs)
}

func TestMemoryStore_Add(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	st.Add("a", "b")

	refs, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []FileRef{"a", "b"}, refs)
}
