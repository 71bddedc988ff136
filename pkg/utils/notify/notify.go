// Package notify provides in-process broadcasters between the goroutines doing
// I/O and the goroutines observing results.
//
// Value keeps the latest value and replays it to every new subscriber. A slow
// subscriber only ever sees the newest value; intermediate values may be skipped.
// Event delivers each published value once to the subscribers present at
// publish time and keeps nothing.
package notify

import (
	"context"
	"sync"
)

const eventBufferSize = 16

// Value is a single-producer, multi-consumer holder with replay-last semantics.
// The zero value holds no value.
type Value[T any] struct {
	mu     sync.Mutex
	value  T
	isSet  bool
	nextID int
	subs   map[int]chan T
}

// NewValue returns a Value that already holds v
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{value: v, isSet: true}
}

// Set stores v and pushes it to all subscribers
func (x *Value[T]) Set(v T) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.value = v
	x.isSet = true
	for _, ch := range x.subs {
		replace(ch, v)
	}
}

// Get returns the current value and whether any value has been set
func (x *Value[T]) Get() (T, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.value, x.isSet
}

// Subscribe returns a channel receiving the current value (if set) and every later one.
// The channel is closed when ctx is done.
func (x *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	x.mu.Lock()
	if x.subs == nil {
		x.subs = make(map[int]chan T)
	}
	id := x.nextID
	x.nextID++
	x.subs[id] = ch
	if x.isSet {
		ch <- x.value
	}
	x.mu.Unlock()

	go func() {
		<-ctx.Done()
		x.mu.Lock()
		delete(x.subs, id)
		close(ch)
		x.mu.Unlock()
	}()

	return ch
}

// replace drops a value the subscriber has not read yet. Callers hold the lock, so
// after the drain the send cannot block.
func replace[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

// Event is a fire-once broadcaster. Values published while nobody subscribes are lost.
type Event[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

func (x *Event[T]) Publish(v T) {
	x.mu.Lock()
	defer x.mu.Unlock()

	for _, ch := range x.subs {
		select {
		case ch <- v:
		default:
			// subscriber is not keeping up; the event is dropped for it
		}
	}
}

// Subscribe returns a channel of events published after this call. It is closed when ctx is done.
func (x *Event[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, eventBufferSize)

	x.mu.Lock()
	if x.subs == nil {
		x.subs = make(map[int]chan T)
	}
	id := x.nextID
	x.nextID++
	x.subs[id] = ch
	x.mu.Unlock()

	go func() {
		<-ctx.Done()
		x.mu.Lock()
		delete(x.subs, id)
		close(ch)
		x.mu.Unlock()
	}()

	return ch
}
