package cache

import "sync"

// MarkerCache maps marker IDs to per-marker state, remembering registration order
// so every frame visits markers in the same sequence.
type MarkerCache[V any] struct {
	mu      sync.RWMutex
	markers map[string]V
	order   []string
}

// NewMarkerCache creates a new MarkerCache
func NewMarkerCache[V any]() *MarkerCache[V] {
	return &MarkerCache[V]{
		markers: make(map[string]V),
	}
}

// Get retrieves marker state by ID
func (c *MarkerCache[V]) Get(id string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.markers[id]
	return v, ok
}

// Add stores marker state under id unless the ID is already present.
// It reports whether the value was stored.
func (c *MarkerCache[V]) Add(id string, v V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.markers[id]; ok {
		return false
	}
	c.markers[id] = v
	c.order = append(c.order, id)
	return true
}

// Delete removes a marker by ID and returns what was stored.
func (c *MarkerCache[V]) Delete(id string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.markers[id]
	if !ok {
		return v, false
	}
	delete(c.markers, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return v, true
}

// Len returns the number of cached markers
func (c *MarkerCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Values returns the cached values in registration order
func (c *MarkerCache[V]) Values() []V {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]V, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.markers[id])
	}
	return out
}

// Reset clears all markers from the cache
func (c *MarkerCache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markers = make(map[string]V)
	c.order = nil
}
