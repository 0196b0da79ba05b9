package commerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id string, price float64) Item {
	return Item{
		ID:    id,
		Name:  id,
		Price: price,
		Slug:  id,
		Href:  "/products/" + id,
	}
}

func TestCartAddMergesByID(t *testing.T) {
	store := NewCartStore(NewMemoryStorage(), "cart:test")

	store.Add(testItem("crystal-honey-1kg", 1100), 2)
	store.Add(testItem("crystal-honey-1kg", 1100), 3)

	items := store.Read()
	require.Len(t, items, 1)
	assert.Equal(t, "crystal-honey-1kg", items[0].ID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartAddIgnoresNonPositiveQuantity(t *testing.T) {
	store := NewCartStore(NewMemoryStorage(), "cart:test")

	store.Add(testItem("gawa-ghee-1kg", 1800), 0)
	store.Add(testItem("gawa-ghee-1kg", 1800), -1)

	assert.Empty(t, store.Read())
}

func TestCartNewestFirst(t *testing.T) {
	store := NewCartStore(NewMemoryStorage(), "cart:test")

	store.Add(testItem("first", 10), 1)
	store.Add(testItem("second", 20), 1)

	items := store.Read()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].ID)
	assert.Equal(t, "first", items[1].ID)
}

func TestCartUpdateQuantity(t *testing.T) {
	store := NewCartStore(NewMemoryStorage(), "cart:test")
	store.Add(testItem("deshi-mustard-oil-5ltr", 1550), 2)

	store.UpdateQuantity("deshi-mustard-oil-5ltr", 4)
	items := store.Read()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	store.UpdateQuantity("deshi-mustard-oil-5ltr", 0)
	assert.Empty(t, store.Read())
}

func TestCartRemoveAndClear(t *testing.T) {
	store := NewCartStore(NewMemoryStorage(), "cart:test")
	store.Add(testItem("a", 10), 1)
	store.Add(testItem("b", 20), 1)

	store.Remove("a")
	items := store.Read()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	store.Clear()
	assert.Empty(t, store.Read())
}

func TestCartCorruptStorageReadsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save("cart:test", []byte("{not json")))

	store := NewCartStore(storage, "cart:test")
	assert.Empty(t, store.Read())

	// The store stays usable after a corrupt read.
	store.Add(testItem("a", 10), 1)
	assert.Len(t, store.Read(), 1)
}

func TestCartNotifiesSubscribers(t *testing.T) {
	store := NewCartStore(NewMemoryStorage(), "cart:test")

	var notified [][]Item
	store.Subscribe(func(items []Item) {
		notified = append(notified, items)
	})

	store.Add(testItem("a", 10), 1)
	store.UpdateQuantity("a", 2)
	store.Clear()

	require.Len(t, notified, 3)
	assert.Len(t, notified[0], 1)
	assert.Equal(t, 2, notified[1][0].Quantity)
	assert.Empty(t, notified[2])
}

func TestCartPersistsAcrossStoreInstances(t *testing.T) {
	storage := NewMemoryStorage()

	first := NewCartStore(storage, "cart:test")
	first.Add(testItem("a", 10), 2)

	second := NewCartStore(storage, "cart:test")
	items := second.Read()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}
