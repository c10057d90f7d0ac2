package store

// Store is an observable value with named change channels.
type Store[S any] struct {
	state    S
	channels map[string][]func(S)
}

// New creates a store holding initial.
func New[S any](initial S) *Store[S] {
	return &Store[S]{
		state:    initial,
		channels: make(map[string][]func(S)),
	}
}

// Get returns the current state.
func (s *Store[S]) Get() S {
	return s.state
}

// Set replaces the state without notifying subscribers.
func (s *Store[S]) Set(val S) {
	s.state = val
}

// Update replaces the state with fn(current) without notifying subscribers.
func (s *Store[S]) Update(fn func(S) S) {
	s.state = fn(s.state)
}

// Subscribe registers fn on channel. Subscriptions are permanent.
func (s *Store[S]) Subscribe(channel string, fn func(S)) {
	s.channels[channel] = append(s.channels[channel], fn)
}

// Dispatch notifies every subscriber of channel.
// Panics raised by a subscriber propagate and skip the remaining subscribers.
func (s *Store[S]) Dispatch(channel string) {
	subs := s.channels[channel]
	// Subscribers appended during this dispatch are outside subs.
	for _, fn := range subs[:len(subs):len(subs)] {
		fn(s.state)
	}
}

// Subscribers returns the number of subscribers on channel.
func (s *Store[S]) Subscribers(channel string) int {
	return len(s.channels[channel])
}
