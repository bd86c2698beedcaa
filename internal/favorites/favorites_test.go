package favorites

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.json")
	store := NewStore(path)
	require.NoError(t, store.Load())
	return store, path
}

func TestStore_AddAndRemove(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, 0, store.Count())

	require.NoError(t, store.Add("sunset", "#BD5078"))
	assert.Equal(t, 1, store.Count())
	assert.True(t, store.IsFavorite("sunset"))

	require.NoError(t, store.Add("ocean", "#3a4aae"))
	assert.Equal(t, 2, store.Count())

	// Adding a duplicate is idempotent
	require.NoError(t, store.Add(" sunset ", "#BD5078"))
	assert.Equal(t, 2, store.Count())

	require.NoError(t, store.Remove("sunset"))
	assert.Equal(t, 1, store.Count())
	assert.False(t, store.IsFavorite("sunset"))
	assert.True(t, store.IsFavorite("ocean"))

	// Removing a missing text is a no-op
	require.NoError(t, store.Remove("nonexistent"))
	assert.Equal(t, 1, store.Count())
}

func TestStore_AddNormalizesHex(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Add("ocean", "#3a4aae"))
	favs := store.List()
	require.Len(t, favs, 1)
	assert.Equal(t, "#3A4AAE", favs[0].HexColor)
}

func TestStore_AddUpdatesColorInPlace(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Add("first", "#000000"))
	require.NoError(t, store.Add("second", "#111111"))
	require.NoError(t, store.Add("first", "#FFFFFF"))

	favs := store.List()
	require.Len(t, favs, 2)
	assert.Equal(t, "first", favs[0].Text)
	assert.Equal(t, "#FFFFFF", favs[0].HexColor)
}

func TestStore_AddEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	assert.ErrorIs(t, store.Add("   ", "#000000"), ErrEmptyText)
}

func TestStore_Persistence(t *testing.T) {
	store1, path := newTestStore(t)
	require.NoError(t, store1.Add("sunset", "#BD5078"))
	require.NoError(t, store1.Add("ocean", "#3A4AAE"))

	_, err := os.Stat(path)
	require.NoError(t, err, "favorites.json should exist")

	store2 := NewStore(path)
	require.NoError(t, store2.Load())

	assert.Equal(t, 2, store2.Count())
	for _, fav := range store2.List() {
		assert.NotEmpty(t, fav.Text)
		assert.NotEmpty(t, fav.HexColor)
		assert.False(t, fav.AddedAt.IsZero())
	}
}

func TestStore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path)
	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Count())

	require.NoError(t, store.Add("recovered", "#000000"))
	assert.Equal(t, 1, store.Count())
}

func TestStore_Concurrent(t *testing.T) {
	store, _ := newTestStore(t)

	var wg sync.WaitGroup
	texts := []string{"t1", "t2", "t3", "t4", "t5"}

	for i, text := range texts {
		wg.Add(1)
		go func(s string, n int) {
			defer wg.Done()
			assert.NoError(t, store.Add(s, fmt.Sprintf("#00000%d", n)))
		}(text, i)
	}
	wg.Wait()
	assert.Equal(t, 5, store.Count())

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.IsFavorite("t1")
			_ = store.List()
			_ = store.Count()
		}()
	}
	wg.Wait()

	for _, text := range texts {
		wg.Add(1)
		go func(s string) {
			defer wg.Done()
			assert.NoError(t, store.Remove(s))
		}(text)
	}
	wg.Wait()

	assert.Equal(t, 0, store.Count())
}

func TestStore_ListOrder(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Add("first", "#000001"))
	require.NoError(t, store.Add("second", "#000002"))
	require.NoError(t, store.Add("third", "#000003"))

	favs := store.List()
	require.Len(t, favs, 3)
	assert.Equal(t, "first", favs[0].Text)
	assert.Equal(t, "second", favs[1].Text)
	assert.Equal(t, "third", favs[2].Text)
}
