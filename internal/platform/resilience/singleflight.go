package resilience

import (
	"errors"
	"sync"
)

var errFlightPanicked = errors.New("singleflight: call panicked")

// SingleFlight merges concurrent calls for the same key into one execution.
// Nothing is kept once the call returns.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	wg  sync.WaitGroup
	val T
	err error
}

// Do runs fn once per key at a time. Callers that arrive while fn is running
// wait and receive the same result with shared set.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (v T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight[T])
	}
	if f, ok := g.calls[key]; ok {
		g.mu.Unlock()
		f.wg.Wait()
		return f.val, f.err, true
	}

	f := &flight[T]{}
	f.wg.Add(1)
	g.calls[key] = f
	g.mu.Unlock()

	returned := false
	defer func() {
		if !returned {
			f.err = errFlightPanicked
		}
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		f.wg.Done()
	}()

	f.val, f.err = fn()
	returned = true
	return f.val, f.err, false
}

// Result is what DoChan delivers.
type Result[T any] struct {
	Val    T
	Err    error
	Shared bool
}

// DoChan is Do without blocking the caller, so a waiter can stop listening
// when its own context ends while the shared call keeps running.
func (g *SingleFlight[T]) DoChan(key string, fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		v, err, shared := g.Do(key, fn)
		ch <- Result[T]{Val: v, Err: err, Shared: shared}
	}()
	return ch
}
