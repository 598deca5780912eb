// Package state provides a small observable value holder. Every Set fans a
// change notification out to subscribers over a go-ethereum event feed, so
// readers hold an explicit Subscription they must Unsubscribe.
package state

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"
)

// Store holds one value of T and notifies subscribers when it changes.
// T should be treated as immutable once stored: callers replace values,
// they never mutate one in place.
type Store[T any] struct {
	mu   sync.RWMutex
	val  T
	feed event.FeedOf[struct{}]
}

// New creates a store seeded with initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{val: initial}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val
}

// Set replaces the value and notifies subscribers. It blocks until every
// subscriber has received the notification.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.val = v
	s.mu.Unlock()
	s.feed.Send(struct{}{})
}

// Update applies fn to the current value under the write lock and stores
// the result. fn must return a new value rather than mutate its argument.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.val = fn(s.val)
	s.mu.Unlock()
	s.feed.Send(struct{}{})
}

// Subscribe registers ch for change notifications.
func (s *Store[T]) Subscribe(ch chan<- struct{}) event.Subscription {
	return s.feed.Subscribe(ch)
}
