package commerce

import "sync"

// FavoritesStore keeps a guest's saved products, persisted the same way as
// the cart: one JSON array per storage key, whole-collection writes, change
// notifications, silent degrade to empty on read failure.
type FavoritesStore struct {
	storage     Storage
	key         string
	mu          sync.Mutex
	subscribers []func([]Item)
}

// NewFavoritesStore binds a favorites list to storage under key.
func NewFavoritesStore(storage Storage, key string) *FavoritesStore {
	return &FavoritesStore{storage: storage, key: key}
}

// Subscribe registers a callback invoked after every mutation.
func (s *FavoritesStore) Subscribe(fn func([]Item)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Read returns saved products, most recently added first.
func (s *FavoritesStore) Read() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readItems(s.storage, s.key)
}

// IsFavorite reports whether a product is saved.
func (s *FavoritesStore) IsFavorite(id string) bool {
	for _, entry := range s.Read() {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// Toggle saves the item if absent and removes it if present. It reports
// whether the item is saved after the call.
func (s *FavoritesStore) Toggle(item Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := readItems(s.storage, s.key)
	for _, entry := range items {
		if entry.ID == item.ID {
			s.write(withoutItem(items, item.ID))
			return false
		}
	}

	s.write(append([]Item{item}, items...))
	return true
}

// Remove deletes a saved product by ID.
func (s *FavoritesStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(withoutItem(readItems(s.storage, s.key), id))
}

// Clear empties the favorites list.
func (s *FavoritesStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write([]Item{})
}

func (s *FavoritesStore) write(items []Item) {
	writeItems(s.storage, s.key, items)
	for _, fn := range s.subscribers {
		fn(items)
	}
}
