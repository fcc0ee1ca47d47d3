package state

import (
	"fmt"
	"log/slog"
	"sync"
)

// Store owns the AppState. Every successful Dispatch publishes the new
// snapshot to all subscribers; a subscriber that falls behind only sees the
// latest snapshot.
type Store struct {
	mu     sync.Mutex
	log    *slog.Logger
	state  AppState
	subs   map[int]chan AppState
	nextID int
	closed bool
}

// NewStore creates a Store holding initial.
func NewStore(log *slog.Logger, initial AppState) *Store {
	return &Store{
		log:   log,
		state: initial.Clone(),
		subs:  make(map[int]chan AppState),
	}
}

// State returns a copy of the current state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Dispatch reduces the current state with action and publishes the result.
func (s *Store) Dispatch(action Action) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.state.Clone(), ErrStoreClosed
	}

	next, err := Reduce(s.state, action)
	if err != nil {
		s.log.Debug("action rejected", "op", "state.Store.Dispatch", "action", fmt.Sprintf("%T", action), "error", err)
		return s.state.Clone(), err
	}

	s.state = next
	s.log.Debug("state updated", "op", "state.Store.Dispatch", "phase", next.Phase(), "cart", next.CartCount())

	for _, ch := range s.subs {
		publish(ch, next.Clone())
	}

	return next.Clone(), nil
}

// publish replaces any pending snapshot. Only the store sends on ch and it
// holds the lock, so the second send cannot block.
func publish(ch chan AppState, snapshot AppState) {
	select {
	case ch <- snapshot:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

// Subscribe returns a channel receiving every new state and a function that
// stops the subscription. The channel is closed on unsubscribe or Close.
func (s *Store) Subscribe() (<-chan AppState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan AppState, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

// Close rejects further dispatches and closes every subscriber channel.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
