package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStore_PutGet(t *testing.T) {
	store, err := NewImageStore(4)
	require.NoError(t, err)

	id := store.Put([]byte("png-bytes"))
	assert.NotEmpty(t, id)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestImageStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store, err := NewImageStore(2)
	require.NoError(t, err)

	first := store.Put([]byte{1})
	second := store.Put([]byte{2})
	_, _ = store.Get(first)
	third := store.Put([]byte{3})

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get(second)
	assert.False(t, ok)
	_, ok = store.Get(first)
	assert.True(t, ok)
	_, ok = store.Get(third)
	assert.True(t, ok)
}

func TestNewImageStore_DefaultSize(t *testing.T) {
	store, err := NewImageStore(0)
	require.NoError(t, err)
	assert.NotNil(t, store)
}
