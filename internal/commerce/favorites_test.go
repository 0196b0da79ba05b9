package commerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesToggle(t *testing.T) {
	store := NewFavoritesStore(NewMemoryStorage(), "favorites:test")

	saved := store.Toggle(testItem("sundarban-honey-1kg", 1300))
	assert.True(t, saved)
	assert.True(t, store.IsFavorite("sundarban-honey-1kg"))

	saved = store.Toggle(testItem("sundarban-honey-1kg", 1300))
	assert.False(t, saved)
	assert.False(t, store.IsFavorite("sundarban-honey-1kg"))
	assert.Empty(t, store.Read())
}

func TestFavoritesRemoveAndClear(t *testing.T) {
	store := NewFavoritesStore(NewMemoryStorage(), "favorites:test")
	store.Toggle(testItem("a", 10))
	store.Toggle(testItem("b", 20))

	store.Remove("a")
	items := store.Read()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	store.Clear()
	assert.Empty(t, store.Read())
}

func TestFavoritesNotifiesSubscribers(t *testing.T) {
	store := NewFavoritesStore(NewMemoryStorage(), "favorites:test")

	var calls int
	store.Subscribe(func(items []Item) { calls++ })

	store.Toggle(testItem("a", 10))
	store.Toggle(testItem("a", 10))

	assert.Equal(t, 2, calls)
}
