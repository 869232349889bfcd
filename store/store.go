package store

import (
	"sync"

	"service-booking-client/client"
	"service-booking-client/config"
)

// Store owns the order state tree. All mutation goes through Dispatch, which runs
// the reducer fully synchronously under the lock, so two dispatches never
// interleave. Consumers receive state snapshots, never the live tree.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextSubID   int

	api      client.OrderAPI
	notifier Notifier
	pageSize int

	// detailSeq identifies the newest detail request; responses from older
	// requests are dropped instead of overwriting a newer navigation's state
	detailSeq uint64
}

// Option configures a Store
type Option func(*Store)

// WithPageSize overrides the listing page size
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithNotifier replaces the transient notification sink
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// New creates a store backed by the given Data Client
func New(api client.OrderAPI, opts ...Option) *Store {
	s := &Store{
		state:       NewState(),
		subscribers: make(map[int]func(State)),
		api:         api,
		notifier:    LogNotifier{},
		pageSize:    10,
	}
	if config.AppConfig != nil && config.AppConfig.API.PageSize > 0 {
		s.pageSize = config.AppConfig.API.PageSize
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies one action through the reducer and notifies subscribers with
// the resulting snapshot
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.state
	listeners := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Subscribe registers a listener called with every new state snapshot. The
// returned function unsubscribes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// ToggleAddressDetailsPanel flips the address details UI toggle
func (s *Store) ToggleAddressDetailsPanel() {
	s.Dispatch(ToggleAddressDetails{})
}

// ToggleIssueInput flips the issue report UI toggle
func (s *Store) ToggleIssueInput() {
	s.Dispatch(ToggleIssueField{})
}

// ClearError resets the error field only
func (s *Store) ClearError() {
	s.Dispatch(ResetError{})
}
