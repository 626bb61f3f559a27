// Package pending tracks work deferred until a precondition holds.
package pending

import "sync"

// Set is an insertion-ordered set of keys whose work is waiting to be retried.
type Set[K comparable] struct {
	mu    sync.Mutex
	items []K
	index map[K]struct{}
}

// New creates a new empty set.
func New[K comparable]() *Set[K] {
	return &Set[K]{
		items: make([]K, 0),
		index: make(map[K]struct{}),
	}
}

// Add appends key unless it is already pending. It reports whether key was added.
func (s *Set[K]) Add(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.items = append(s.items, key)
	return true
}

// Remove drops key. It reports whether key was pending.
func (s *Set[K]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[key]; !ok {
		return false
	}
	delete(s.index, key)
	for i, k := range s.items {
		if k == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of pending keys.
func (s *Set[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Keys returns a copy of the pending keys in insertion order.
func (s *Set[K]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]K, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0]
	s.index = make(map[K]struct{})
}

// Drain offers every pending key to retry once, in insertion order, when ready
// returns true, and returns how many were offered. Offered keys are removed whatever retry does; when ready is false
// nothing is offered and the set is left as it is.
func (s *Set[K]) Drain(ready func() bool, retry func(K)) int {
	if s.Len() == 0 || !ready() {
		return 0
	}
	offered := 0
	for _, k := range s.Keys() {
		if !s.Remove(k) {
			continue
		}
		retry(k)
		offered++
	}
	return offered
}
