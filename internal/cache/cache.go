// Package cache holds the engine's long-lived state: the marker registry and counters
// that outlive a single frame.
package cache

import "sync"

// SafeCounter is a thread-safe counter
type SafeCounter struct {
	mu sync.Mutex
	v  int64
}

func (c *SafeCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

func (c *SafeCounter) Set(v int64) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Inc increments the counter and returns the new value.
func (c *SafeCounter) Inc() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v++
	return c.v
}
