package tracking

import (
	"sync"

	"github.com/example/amader/internal/commerce"
)

// SessionRegistry hands out one Tracker per guest session and owns its
// lifecycle: created on first use, dropped together with its persisted
// dedupe state when the session ends.
type SessionRegistry struct {
	sink    Sink
	storage commerce.Storage

	mu       sync.Mutex
	trackers map[string]*Tracker
}

// NewSessionRegistry builds a registry over the shared sink and storage.
func NewSessionRegistry(sink Sink, storage commerce.Storage) *SessionRegistry {
	return &SessionRegistry{
		sink:     sink,
		storage:  storage,
		trackers: make(map[string]*Tracker),
	}
}

// Tracker returns the session's tracker, creating one on first use.
func (r *SessionRegistry) Tracker(sessionID string) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracker, ok := r.trackers[sessionID]
	if !ok {
		tracker = NewTracker(r.sink, r.storage, "tracked_events:"+sessionID)
		r.trackers[sessionID] = tracker
	}
	return tracker
}

// EndSession removes the session's tracker and clears its persisted
// dedupe keys.
func (r *SessionRegistry) EndSession(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.trackers, sessionID)
	_ = r.storage.Delete("tracked_events:" + sessionID)
}
