package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMRU_EvictsMostRecent(t *testing.T) {
	var discarded []string
	m := NewMRU(MRUOpts{
		Size:    4,
		OnEvict: func(key string, _ any) { discarded = append(discarded, key) },
	})
	defer m.Close()

	m.Put("A", "Hello")
	m.Put("B", "World")
	m.Put("C", "Holberton")
	m.Put("D", "School")
	m.Put("E", "Battery") // D was used last

	m.Get("B")
	m.Put("F", "Mission") // B was used last

	m.Put("G", "San Francisco") // F was used last

	m.Get("A")
	m.Get("B")
	m.Get("C")
	m.Put("H", "H") // C was used last

	assert.Equal(t, []string{"D", "B", "F", "C"}, discarded)
	assert.Equal(t, 4, m.Len())

	for _, k := range []string{"A", "E", "G", "H"} {
		_, ok := m.Get(k)
		assert.True(t, ok, k)
	}
}

func TestMRU_UpdateDoesNotEvict(t *testing.T) {
	m := NewMRU(MRUOpts{Size: 1})
	defer m.Close()

	m.Put("a", 1)
	m.Put("a", 2)
	m.Put("a", nil)

	val, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, val)
	assert.Equal(t, 1, m.Len())
}

func TestMRU_DeleteAndClose(t *testing.T) {
	m := NewMRU(MRUOpts{})
	m.Put("a", 1)
	m.Delete("a")
	m.Delete("missing")
	assert.Zero(t, m.Len())

	m.Close()
	m.Put("b", 2)
	_, ok := m.Get("b")
	assert.False(t, ok)
}

func TestMRU_TypedNilIgnored(t *testing.T) {
	m := NewMRU(MRUOpts{Size: 2})
	defer m.Close()

	var p *int
	var mp map[string]int
	m.Put("p", p)
	m.Put("m", mp)

	assert.Zero(t, m.Len())
	_, ok := m.Get("p")
	assert.False(t, ok)
}
