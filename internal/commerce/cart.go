package commerce

import (
	"encoding/json"
	"sync"
)

// Item is a cart or favorites line. ID is the product slug, stable and
// unique per product; at most one entry per ID exists in a store.
type Item struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	Slug      string   `json:"slug"`
	Href      string   `json:"href"`
	Quantity  int      `json:"quantity"`
}

// CartStore keeps one guest cart, persisted as a JSON array under a single
// storage key. Every mutation writes the whole collection back and notifies
// subscribers. A failed or corrupt read degrades to an empty cart.
type CartStore struct {
	storage     Storage
	key         string
	mu          sync.Mutex
	subscribers []func([]Item)
}

// NewCartStore binds a cart to storage under key.
func NewCartStore(storage Storage, key string) *CartStore {
	return &CartStore{storage: storage, key: key}
}

// Subscribe registers a callback invoked with the full collection after
// every mutation.
func (s *CartStore) Subscribe(fn func([]Item)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Read returns the cart in insertion order, most recent first.
func (s *CartStore) Read() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Add merges an item into the cart by ID, summing quantities. Quantities
// of zero or less are ignored. New items go to the front.
func (s *CartStore) Add(item Item, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.read()
	for i, entry := range items {
		if entry.ID == item.ID {
			items[i].Quantity += quantity
			s.write(items)
			return
		}
	}

	item.Quantity = quantity
	s.write(append([]Item{item}, items...))
}

// UpdateQuantity sets the quantity for an item, removing it entirely when
// the quantity drops to zero or below.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.read()
	if quantity <= 0 {
		s.write(withoutItem(items, id))
		return
	}

	for i, entry := range items {
		if entry.ID == id {
			items[i].Quantity = quantity
		}
	}
	s.write(items)
}

// Remove deletes an item by ID.
func (s *CartStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(withoutItem(s.read(), id))
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write([]Item{})
}

func (s *CartStore) read() []Item {
	return readItems(s.storage, s.key)
}

func (s *CartStore) write(items []Item) {
	writeItems(s.storage, s.key, items)
	for _, fn := range s.subscribers {
		fn(items)
	}
}

func withoutItem(items []Item, id string) []Item {
	kept := items[:0]
	for _, entry := range items {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	return kept
}

func readItems(storage Storage, key string) []Item {
	raw, err := storage.Load(key)
	if err != nil || len(raw) == 0 {
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt state reads as an empty collection.
		return []Item{}
	}
	return items
}

func writeItems(storage Storage, key string, items []Item) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = storage.Save(key, raw)
}
