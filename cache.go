package reviewdesk

import "sync"

// TranscriptionCache holds the per-specialist transcription lists fetched
// during a session, plus the single "currently selected transcription" slot
// shared across navigation.
//
// The cache is purely presence-based: Get returns an empty list both for a
// specialist that was never fetched and for one whose list is legitimately
// empty, so empty lists are re-fetched on every visit. Callers that want a
// freshness check need a different structure; this one deliberately mirrors
// the console's behavior.
type TranscriptionCache struct {
	mu       sync.RWMutex
	lists    map[string][]Transcription
	selected *Transcription
}

// NewTranscriptionCache creates an empty cache.
func NewTranscriptionCache() *TranscriptionCache {
	return &TranscriptionCache{
		lists: make(map[string][]Transcription),
	}
}

// Get returns the cached list for a specialist key, possibly empty.
// The returned slice is a copy; mutating it does not affect the cache.
func (c *TranscriptionCache) Get(specialistKey string) []Transcription {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.lists[specialistKey]
	out := make([]Transcription, len(list))
	copy(out, list)
	return out
}

// Set replaces the list for a specialist key wholesale. There is no partial
// or merge update. Writes are keyed: a fetch issued for key K must call Set
// with K, never with whatever key is currently displayed, so a late response
// lands harmlessly in its own slot.
func (c *TranscriptionCache) Set(specialistKey string, list []Transcription) {
	stored := make([]Transcription, len(list))
	copy(stored, list)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[specialistKey] = stored
}

// Select stores the transcription in the shared selection slot. The slot
// holds at most one value; only Select and ClearSelection mutate it, never
// cache eviction.
func (c *TranscriptionCache) Select(t Transcription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &t
}

// Selected returns the currently selected transcription, if any.
func (c *TranscriptionCache) Selected() (Transcription, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.selected == nil {
		return Transcription{}, false
	}
	return *c.selected, true
}

// ClearSelection empties the selection slot. Called on explicit navigation
// away from the detail view.
func (c *TranscriptionCache) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}
