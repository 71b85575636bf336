package cache

import (
	"container/list"

	"github.com/codewandler/freqcache-go/core/lfu"
)

type MRUOpts struct {
	Size    int
	OnEvict func(key string, val any)
}

type entry struct {
	key string
	val any
}

type mruState struct {
	size    int
	ll      *list.List // front = most recently used
	items   map[string]*list.Element
	onEvict func(string, any)
}

// MRU evicts the most recently used entry when a new key arrives at a full
// cache. It suits cyclic scans, where the entry just read is the one least
// likely to be read again soon.
type MRU struct {
	s *serial[*mruState]
}

func NewMRU(opts MRUOpts) *MRU {
	if opts.Size <= 0 {
		opts.Size = 128
	}
	return &MRU{s: newSerial(&mruState{
		size:    opts.Size,
		ll:      list.New(),
		items:   make(map[string]*list.Element),
		onEvict: opts.OnEvict,
	})}
}

func (m *MRU) Get(key string) (val any, ok bool) {
	m.s.do(func(st *mruState) {
		if ele, found := st.items[key]; found {
			st.ll.MoveToFront(ele)
			val, ok = ele.Value.(*entry).val, true
		}
	})
	return val, ok
}

// Put inserts or updates key. A nil value is ignored.
func (m *MRU) Put(key string, val any) {
	if lfu.IsNil(val) {
		return
	}
	m.s.do(func(st *mruState) {
		if ele, ok := st.items[key]; ok {
			st.ll.MoveToFront(ele)
			ele.Value.(*entry).val = val
			return
		}

		if st.ll.Len() >= st.size {
			if first := st.ll.Front(); first != nil {
				e := first.Value.(*entry)
				st.ll.Remove(first)
				delete(st.items, e.key)
				if st.onEvict != nil {
					st.onEvict(e.key, e.val)
				}
			}
		}
		st.items[key] = st.ll.PushFront(&entry{key: key, val: val})
	})
}

func (m *MRU) Delete(key string) {
	m.s.do(func(st *mruState) {
		if ele, ok := st.items[key]; ok {
			st.ll.Remove(ele)
			delete(st.items, key)
		}
	})
}

func (m *MRU) Len() (n int) {
	m.s.do(func(st *mruState) { n = st.ll.Len() })
	return n
}

func (m *MRU) Close() {
	m.s.close()
}

var _ Cache = (*MRU)(nil)
