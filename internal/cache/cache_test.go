package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounter_InitialValue(t *testing.T) {
	c := &SafeCounter{}
	assert.Equal(t, int64(0), c.Value())
}

func TestSafeCounter_Set(t *testing.T) {
	c := &SafeCounter{}

	c.Set(42)
	assert.Equal(t, int64(42), c.Value())

	c.Set(0)
	assert.Equal(t, int64(0), c.Value())
}

func TestSafeCounter_Inc(t *testing.T) {
	c := &SafeCounter{}

	assert.Equal(t, int64(1), c.Inc())
	c.Inc()
	assert.Equal(t, int64(3), c.Inc())
	assert.Equal(t, int64(3), c.Value())
}

func TestSafeCounter_Concurrent(t *testing.T) {
	c := &SafeCounter{}
	var wg sync.WaitGroup

	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), c.Value())
}
