// Package session keeps the client-side view of the authenticated user in
// sync with the server. One Store corresponds to one browser-tab-like
// context; a Broadcaster makes every store of the same origin converge
// after any of them logs out or is invalidated.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/internal/client/api"
)

// Store holds the auth state of a single client context: the nullable
// current user, a loading flag, and a suppression flag that stops repeated
// re-checks once a 401 has been observed.
type Store struct {
	mu         sync.Mutex
	api        *api.Client
	bus        *Broadcaster
	user       *domain.PublicUser
	loading    bool
	suppressed bool
}

// NewStore creates a store bound to an API client and, optionally, a
// broadcaster. It hooks the client's transport so a logout marker on any
// response clears local state and fans out to the other stores.
func NewStore(client *api.Client, bus *Broadcaster) *Store {
	s := &Store{
		api:     client,
		bus:     bus,
		loading: true,
	}
	client.OnAuthEvent(s.handleAuthEvent)
	if bus != nil {
		bus.subscribe(s)
	}
	return s
}

// handleAuthEvent runs for every observed logout marker. It only
// broadcasts on an actual state change, which bounds the fan-out: once a
// store is already logged out, further markers are absorbed locally.
func (s *Store) handleAuthEvent() {
	s.mu.Lock()
	changed := s.user != nil
	s.user = nil
	s.mu.Unlock()

	if changed && s.bus != nil {
		s.bus.publish(s)
	}
}

// Refresh re-derives the auth state from the server with one WhoAmI call.
// After an observed 401 the store suppresses further checks until the next
// successful Login, so a known-unauthenticated client does not hammer the
// endpoint.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.suppressed {
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.user = nil
		s.suppressed = true
		if errors.Is(err, domain.ErrNotAuthenticated) || errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	s.user = user
	return nil
}

// Login authenticates and re-enables auth checks
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		return err
	}

	s.user = user
	s.suppressed = false
	return nil
}

// Logout clears the session. The response's logout marker runs through
// handleAuthEvent, which also notifies the other stores.
func (s *Store) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)

	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.mu.Unlock()

	return err
}

// User returns the current user, or nil when logged out
func (s *Store) User() *domain.PublicUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Loading reports whether an auth check is in flight
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Suppressed reports whether auth re-checks are currently disabled
func (s *Store) Suppressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suppressed
}

// Broadcaster fans a logout signal out to every subscribed store, the
// same-origin broadcast of the browser app. Each notified store re-derives
// truth from WhoAmI rather than trusting the peer's payload; convergence
// is last-writer-wins within one broadcast plus one round trip.
type Broadcaster struct {
	mu     sync.Mutex
	stores []*Store
}

// NewBroadcaster creates an empty broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

func (b *Broadcaster) subscribe(s *Store) {
	b.mu.Lock()
	b.stores = append(b.stores, s)
	b.mu.Unlock()
}

func (b *Broadcaster) publish(origin *Store) {
	b.mu.Lock()
	stores := make([]*Store, len(b.stores))
	copy(stores, b.stores)
	b.mu.Unlock()

	for _, s := range stores {
		if s == origin {
			continue
		}
		_ = s.Refresh(context.Background())
	}
}
