package pending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_New(t *testing.T) {
	s := New[string]()

	assert.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())
}

func TestSet_AddDeduplicates(t *testing.T) {
	s := New[string]()

	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"))

	assert.Equal(t, []string{"a", "b"}, s.Keys())
}

func TestSet_Remove(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")
	s.Add("c")

	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))
	assert.False(t, s.Remove("missing"))

	assert.Equal(t, []string{"a", "c"}, s.Keys())
}

func TestSet_Clear(t *testing.T) {
	s := New[int]()
	s.Add(1)
	s.Add(2)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())
	assert.True(t, s.Add(1), "keys can be added again after clear")
}

func TestSet_DrainNotReadyKeepsKeys(t *testing.T) {
	s := New[string]()
	s.Add("a")

	called := false
	n := s.Drain(func() bool { return false }, func(string) { called = true })

	assert.Equal(t, 0, n)
	assert.False(t, called)
	assert.Equal(t, []string{"a"}, s.Keys())
}

func TestSet_DrainRemovesRegardlessOfOutcome(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")

	var offered []string
	n := s.Drain(func() bool { return true }, func(k string) {
		offered = append(offered, k)
	})

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, offered)
	assert.Equal(t, 0, s.Len())
}

func TestSet_DrainSkipsKeysRemovedByRetry(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")

	var offered []string
	n := s.Drain(func() bool { return true }, func(k string) {
		offered = append(offered, k)
		s.Remove("b")
	})

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"a"}, offered)
}

func TestSet_DrainEmptyDoesNotAskReadiness(t *testing.T) {
	s := New[string]()

	asked := false
	s.Drain(func() bool {
		asked = true
		return true
	}, func(string) {})

	assert.False(t, asked)
}

func TestSet_RetryMayRequeue(t *testing.T) {
	s := New[string]()
	s.Add("a")

	s.Drain(func() bool { return true }, func(k string) { s.Add(k) })

	assert.Equal(t, []string{"a"}, s.Keys())
}
