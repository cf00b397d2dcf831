package blog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmorel/devfolio/internal/domain"
	"github.com/jmorel/devfolio/internal/notify"
)

// CreateUserInput carries the caller-supplied fields for a new user. ID and
// CreatedAt are allocated by the store.
type CreateUserInput struct {
	Username string
	Email    string
	Avatar   string
	Role     domain.Role
}

// UpdateUserInput is a partial update; nil fields keep their current value.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Avatar   *string
	Role     *domain.Role
}

// CreateUser appends a new user. No uniqueness constraint is applied to email
// or username; with duplicates, Login resolves to the first match in list
// order. Requires an admin current user.
func (s *Store) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireAdmin(); err != nil {
		s.notify("Create user failed", "Only admins can create users", notify.VariantDestructive)
		return nil, err
	}
	if !in.Role.Valid() {
		s.notify("Create user failed", fmt.Sprintf("Unknown role %q", in.Role), notify.VariantDestructive)
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, in.Role)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		Avatar:    in.Avatar,
		Role:      in.Role,
		CreatedAt: s.now(),
	}
	s.state.Users = append(s.state.Users, user)
	s.persist(ctx)
	s.notify("User created", fmt.Sprintf("User %s has been created successfully", user.Username), notify.VariantDefault)

	out := user
	return &out, nil
}

// UpdateUser shallow-merges the given fields into an existing user. Admins may
// update anyone; other users may only update themselves and may not change
// their own role. If the updated user
// is the current user, the current-user snapshot is refreshed to the merged
// value. Post author snapshots are deliberately left stale.
func (s *Store) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(id)
	if idx < 0 {
		s.notify("Update failed", "User not found", notify.VariantDestructive)
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}

	cu := s.state.CurrentUser
	if cu == nil {
		s.notify("Update failed", "You must be logged in to update users", notify.VariantDestructive)
		return nil, fmt.Errorf("%w: you must be logged in", domain.ErrNotLoggedIn)
	}
	if cu.Role != domain.RoleAdmin {
		if cu.ID != id {
			s.notify("Update failed", "You do not have permission to update this user", notify.VariantDestructive)
			return nil, fmt.Errorf("%w: cannot update another user", domain.ErrForbidden)
		}
		// A self-update must not touch the role, or any user could grant
		// themselves admin.
		if in.Role != nil {
			s.notify("Update failed", "You do not have permission to change roles", notify.VariantDestructive)
			return nil, fmt.Errorf("%w: only admins can change roles", domain.ErrForbidden)
		}
	}

	user := s.state.Users[idx]
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			s.notify("Update failed", fmt.Sprintf("Unknown role %q", *in.Role), notify.VariantDestructive)
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}

	s.state.Users[idx] = user
	if cu.ID == id {
		refreshed := user
		s.state.CurrentUser = &refreshed
	}
	s.persist(ctx)
	s.notify("User updated", fmt.Sprintf("User %s has been updated successfully", user.Username), notify.VariantDefault)

	out := user
	return &out, nil
}

// DeleteUser removes a user and reassigns their posts to a fallback: the first
// remaining admin in list order, or the first remaining user if no admin is
// left. The currently logged-in user cannot be deleted. Requires an admin
// current user.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cu, err := s.requireAdmin()
	if err != nil {
		s.notify("Delete failed", "Only admins can delete users", notify.VariantDestructive)
		return err
	}
	if cu.ID == id {
		s.notify("Delete failed", "Cannot delete currently logged in user", notify.VariantDestructive)
		return fmt.Errorf("%w: cannot delete the currently logged-in user", domain.ErrInvalidState)
	}

	idx := s.userIndex(id)
	if idx < 0 {
		s.notify("Delete failed", "User not found", notify.VariantDestructive)
		return fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}

	s.state.Users = append(s.state.Users[:idx], s.state.Users[idx+1:]...)

	// Reassign authorship so no post is left pointing at the deleted user.
	if fallback := s.fallbackAuthor(); fallback != nil {
		for i := range s.state.Posts {
			if s.state.Posts[i].Author.ID == id {
				s.state.Posts[i].Author = *fallback
			}
		}
	}

	s.persist(ctx)
	s.notify("User deleted", "The user has been deleted successfully", notify.VariantDefault)
	return nil
}

// GetUser is a pure lookup with no side effects.
func (s *Store) GetUser(id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	u := s.state.Users[idx]
	return &u, nil
}

// Users returns a copy of the user list in creation order.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, len(s.state.Users))
	copy(out, s.state.Users)
	return out
}

// userIndex returns the position of the user with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) userIndex(id string) int {
	for i := range s.state.Users {
		if s.state.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// fallbackAuthor picks the user orphaned posts are reassigned to: the first
// admin in list order, else the first user. Returns nil when no users remain.
// Callers must hold s.mu.
func (s *Store) fallbackAuthor() *domain.User {
	for i := range s.state.Users {
		if s.state.Users[i].Role == domain.RoleAdmin {
			u := s.state.Users[i]
			return &u
		}
	}
	if len(s.state.Users) > 0 {
		u := s.state.Users[0]
		return &u
	}
	return nil
}
