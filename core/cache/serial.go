package cache

import "sync"

// serial owns a piece of state S on a single goroutine. Every operation is
// sent over a channel and runs to completion before the next one starts, so
// S itself needs no locking.
type serial[S any] struct {
	ops       chan func(S)
	done      chan struct{}
	closeOnce sync.Once
}

func newSerial[S any](state S) *serial[S] {
	s := &serial[S]{
		ops:  make(chan func(S)),
		done: make(chan struct{}),
	}
	go s.run(state)
	return s
}

func (s *serial[S]) run(state S) {
	for {
		select {
		case op := <-s.ops:
			op(state)
		case <-s.done:
			return
		}
	}
}

// do runs fn on the owner goroutine and waits for it. It reports false,
// without running fn, once the owner has been closed.
func (s *serial[S]) do(fn func(S)) bool {
	finished := make(chan struct{})
	select {
	case s.ops <- func(state S) {
		defer close(finished)
		fn(state)
	}:
	case <-s.done:
		return false
	}
	<-finished
	return true
}

func (s *serial[S]) close() {
	s.closeOnce.Do(func() { close(s.done) })
}
