// Package blog implements the blog store: the single authority over the
// {users, posts, currentUser} state tree. Every mutation goes through it, is
// permission-checked here, is persisted to durable storage immediately, and
// emits a user-facing notification on both success and failure paths.
package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmorel/devfolio/internal/domain"
	"github.com/jmorel/devfolio/internal/notify"
)

// Store owns the blog state. Exactly one Store exists per process; operations
// are serialized by an internal mutex so each runs to completion before the
// next begins.
type Store struct {
	mu       sync.Mutex
	state    *domain.BlogState
	states   domain.StateStore
	notifier notify.Notifier
}

// New creates a Store seeded from durable storage. A missing or unreadable
// stored state falls back to the default seed; load failures are never
// propagated to the caller.
func New(ctx context.Context, states domain.StateStore, notifier notify.Notifier) *Store {
	state, err := states.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("stored blog state unreadable, falling back to seed", "error", err)
		}
		state = SeedState()
	}

	s := &Store{state: state, states: states, notifier: notifier}
	s.mu.Lock()
	s.persist(ctx)
	s.mu.Unlock()
	return s
}

// Login looks up a user by exact email match and makes them the current user.
// The match is case-sensitive; with duplicate emails the first user in list
// order wins.
func (s *Store) Login(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		if s.state.Users[i].Email == email {
			u := s.state.Users[i]
			s.state.CurrentUser = &u
			s.persist(ctx)
			s.notify("Logged in", fmt.Sprintf("Welcome back, %s!", u.Username), notify.VariantDefault)
			out := u
			return &out, nil
		}
	}

	s.notify("Login failed", "User not found", notify.VariantDestructive)
	return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
}

// Logout clears the current user. It always succeeds, even when nobody is
// logged in.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentUser = nil
	s.persist(ctx)
	s.notify("Logged out", "You have been logged out successfully", notify.VariantDefault)
}

// CurrentUser returns a copy of the logged-in user, or nil when anonymous.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

// State returns a deep copy of the whole state tree.
func (s *Store) State() *domain.BlogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// persist writes the whole tree to durable storage. The write is treated as
// fire-and-forget: a failure is logged but never fails the operation that
// triggered it, and the in-memory tree stays authoritative for the session.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := s.states.Save(ctx, s.state); err != nil {
		slog.Error("persist blog state", "error", err)
	}
}

func (s *Store) now() time.Time {
	return time.Now().UTC()
}

func (s *Store) notify(title, description string, variant notify.Variant) {
	s.notifier.Notify(notify.Notification{
		Title:       title,
		Description: description,
		Variant:     variant,
		At:          time.Now().UTC(),
	})
}

// requireAdmin returns the current user when they are an admin. Callers must
// hold s.mu.
func (s *Store) requireAdmin() (*domain.User, error) {
	cu := s.state.CurrentUser
	if cu == nil {
		return nil, fmt.Errorf("%w: you must be logged in", domain.ErrNotLoggedIn)
	}
	if cu.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return cu, nil
}
