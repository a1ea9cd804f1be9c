package transport

import "sync/atomic"

// RoundRobin hands out items in order, wrapping at the end.
type RoundRobin[T any] struct {
	items []T
	n     atomic.Uint64
}

func NewRoundRobin[T any](items []T) *RoundRobin[T] {
	return &RoundRobin[T]{items: items}
}

func (r *RoundRobin[T]) Next() T {
	x := r.n.Add(1)
	return r.items[(x-1)%uint64(len(r.items))]
}

func (r *RoundRobin[T]) All() []T { return r.items }
