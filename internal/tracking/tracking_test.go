package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/amader/internal/commerce"
)

func honeyInput() ItemInput {
	return ItemInput{
		Slug:     "crystal-honey-1kg",
		Name:     "Crystal Honey",
		Price:    1200,
		Quantity: 1,
	}
}

func TestNormalizeItemDefaults(t *testing.T) {
	sale := 1100.0

	item := NormalizeItem(ItemInput{
		Slug:      "crystal-honey-1kg",
		ID:        "abc",
		Name:      "Crystal Honey",
		Price:     1200,
		SalePrice: &sale,
	})
	assert.Equal(t, "crystal-honey-1kg", item.ItemID)
	assert.Equal(t, 1100.0, item.Price)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, ItemBrand, item.ItemBrand)

	item = NormalizeItem(ItemInput{ID: "abc", Name: "Crystal Honey"})
	assert.Equal(t, "abc", item.ItemID)

	item = NormalizeItem(ItemInput{Name: "Crystal Honey"})
	assert.Equal(t, "Crystal Honey", item.ItemID)
}

func TestViewItemDeduplicatedPerProduct(t *testing.T) {
	sink := NewQueueSink()
	tracker := NewTracker(sink, commerce.NewMemoryStorage(), "tracked_events:test")

	tracker.TrackViewItem(honeyInput())
	tracker.TrackViewItem(honeyInput())
	assert.Len(t, sink.Events(), 1)

	other := honeyInput()
	other.Slug = "gawa-ghee-1kg"
	tracker.TrackViewItem(other)
	assert.Len(t, sink.Events(), 2)
}

func TestAddToCartFiresEveryTime(t *testing.T) {
	sink := NewQueueSink()
	tracker := NewTracker(sink, commerce.NewMemoryStorage(), "tracked_events:test")

	tracker.TrackAddToCart(honeyInput(), 1)
	tracker.TrackAddToCart(honeyInput(), 2)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "add_to_cart", events[0]["event"])
	assert.Equal(t, 2400.0, events[1]["value"])
}

func TestBeginCheckoutKeyedByCartContents(t *testing.T) {
	sink := NewQueueSink()
	tracker := NewTracker(sink, commerce.NewMemoryStorage(), "tracked_events:test")

	cart := []ItemInput{honeyInput()}
	tracker.TrackBeginCheckout(cart, 60)
	tracker.TrackBeginCheckout(cart, 60)
	assert.Len(t, sink.Events(), 1)

	// A different quantity is a different cart.
	cart[0].Quantity = 2
	tracker.TrackBeginCheckout(cart, 60)
	assert.Len(t, sink.Events(), 2)
}

func TestPurchaseDeduplicatedPerOrder(t *testing.T) {
	sink := NewQueueSink()
	tracker := NewTracker(sink, commerce.NewMemoryStorage(), "tracked_events:test")

	tracker.TrackPurchase("order-1", []ItemInput{honeyInput()}, 60)
	tracker.TrackPurchase("order-1", []ItemInput{honeyInput()}, 60)
	tracker.TrackPurchase("order-2", []ItemInput{honeyInput()}, 60)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "order-1", events[0]["transaction_id"])
	assert.Equal(t, 1260.0, events[0]["value"])
	assert.Equal(t, "order-2", events[1]["transaction_id"])
}

func TestDedupeSurvivesTrackerRebuild(t *testing.T) {
	sink := NewQueueSink()
	storage := commerce.NewMemoryStorage()

	first := NewTracker(sink, storage, "tracked_events:test")
	first.TrackViewItem(honeyInput())
	require.Len(t, sink.Events(), 1)

	second := NewTracker(sink, storage, "tracked_events:test")
	second.TrackViewItem(honeyInput())
	assert.Len(t, sink.Events(), 1)
}

func TestEventEnvelope(t *testing.T) {
	sink := NewQueueSink()
	tracker := NewTracker(sink, commerce.NewMemoryStorage(), "tracked_events:test")

	tracker.TrackSearch("honey", 4)

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "search", events[0]["event"])
	assert.Equal(t, "web", events[0]["event_source"])
	assert.NotEmpty(t, events[0]["event_id"])
	assert.Equal(t, "honey", events[0]["search_term"])
	assert.Equal(t, 4, events[0]["result_count"])
}

func TestRegistryReusesTrackerPerSession(t *testing.T) {
	registry := NewSessionRegistry(NewQueueSink(), commerce.NewMemoryStorage())

	a := registry.Tracker("session-a")
	assert.Same(t, a, registry.Tracker("session-a"))
	assert.NotSame(t, a, registry.Tracker("session-b"))
}

func TestEndSessionResetsDedupe(t *testing.T) {
	sink := NewQueueSink()
	registry := NewSessionRegistry(sink, commerce.NewMemoryStorage())

	registry.Tracker("session-a").TrackViewItem(honeyInput())
	require.Len(t, sink.Events(), 1)

	registry.EndSession("session-a")

	registry.Tracker("session-a").TrackViewItem(honeyInput())
	assert.Len(t, sink.Events(), 2)
}
