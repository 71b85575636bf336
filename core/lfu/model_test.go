package lfu

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// model is the straightforward scan-based cache: three maps and a clock, with
// the victim found by scanning for the minimum frequency and then the minimum
// recency among the candidates.
type model struct {
	capacity int
	values   map[int]int
	freq     map[int]int
	recency  map[int]uint64
	clock    uint64
}

func newModel(capacity int) *model {
	return &model{
		capacity: capacity,
		values:   map[int]int{},
		freq:     map[int]int{},
		recency:  map[int]uint64{},
	}
}

func (m *model) put(key, val int) (victim int, evicted bool) {
	m.clock++
	if _, ok := m.values[key]; ok {
		m.values[key] = val
		m.freq[key]++
		m.recency[key] = m.clock
		return 0, false
	}

	if len(m.values) >= m.capacity {
		minFreq := 0
		for _, f := range m.freq {
			if minFreq == 0 || f < minFreq {
				minFreq = f
			}
		}
		var oldest uint64
		for k, f := range m.freq {
			if f != minFreq {
				continue
			}
			if !evicted || m.recency[k] < oldest {
				victim, oldest, evicted = k, m.recency[k], true
			}
		}
		delete(m.values, victim)
		delete(m.freq, victim)
		delete(m.recency, victim)
	}

	m.values[key] = val
	m.freq[key] = 1
	m.recency[key] = m.clock
	return victim, evicted
}

func (m *model) get(key int) (int, bool) {
	v, ok := m.values[key]
	if !ok {
		return 0, false
	}
	m.clock++
	m.freq[key]++
	m.recency[key] = m.clock
	return v, true
}

func TestCache_MatchesScanModel(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 7, 16} {
		rng := rand.New(rand.NewPCG(uint64(capacity), 99))
		keySpace := capacity*2 + 1

		m := newModel(capacity)
		c := New(Options[int, int]{Capacity: capacity})

		for i := 0; i < 5_000; i++ {
			key := rng.IntN(keySpace)
			if rng.IntN(3) == 0 {
				wantVictim, wantEvicted := m.put(key, i)
				gotVictim, gotEvicted := c.Put(key, i)
				require.Equal(t, wantEvicted, gotEvicted, "cap=%d op=%d put(%d)", capacity, i, key)
				require.Equal(t, wantVictim, gotVictim, "cap=%d op=%d put(%d)", capacity, i, key)
			} else {
				wantVal, wantOK := m.get(key)
				gotVal, gotOK := c.Get(key)
				require.Equal(t, wantOK, gotOK, "cap=%d op=%d get(%d)", capacity, i, key)
				require.Equal(t, wantVal, gotVal, "cap=%d op=%d get(%d)", capacity, i, key)
			}

			require.Equal(t, len(m.values), c.Len())
			for k, f := range m.freq {
				gotFreq, ok := c.Frequency(k)
				require.True(t, ok)
				require.Equal(t, f, gotFreq)
				gotRecency, _ := c.Recency(k)
				require.Equal(t, m.recency[k], gotRecency)
			}
		}
		checkInvariants(t, c)
	}
}
