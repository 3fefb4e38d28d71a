package network

import "sync"

// Result is the outcome of one background query.
type Result[T any] struct {
	Value T
	Err   error
}

// Latest holds the result of the newest background query. Results from
// queries started before it are dropped whenever they arrive.
type Latest[T any] struct {
	mu     sync.Mutex
	seq    int
	ready  bool
	result Result[T]
}

// Begin starts a query and returns its sequence number for Deliver.
func (l *Latest[T]) Begin() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.ready = false
	l.result = Result[T]{}
	return l.seq
}

// Deliver stores the result of query seq unless a newer one has begun.
func (l *Latest[T]) Deliver(seq int, value T, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return
	}
	l.result = Result[T]{Value: value, Err: err}
	l.ready = true
}

// Take returns the newest query's result once, if it has arrived.
func (l *Latest[T]) Take() (Result[T], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ready {
		return Result[T]{}, false
	}
	l.ready = false
	return l.result, true
}
