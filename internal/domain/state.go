package domain

import "context"

// BlogState is the aggregate root: every user, every post, and the single
// "current user" of the session. It is the unit of persistence; the whole tree
// is serialized and deserialized atomically.
type BlogState struct {
	Users       []User `json:"users"`
	Posts       []Post `json:"posts"`
	CurrentUser *User  `json:"currentUser"`
}

// Clone returns a deep copy of the state. Slices and the current-user pointer
// are independent of the receiver; callers may mutate the copy freely.
func (s *BlogState) Clone() *BlogState {
	out := &BlogState{
		Users: make([]User, len(s.Users)),
		Posts: make([]Post, len(s.Posts)),
	}
	copy(out.Users, s.Users)
	for i, p := range s.Posts {
		cp := p
		cp.Tags = append([]string(nil), p.Tags...)
		out.Posts[i] = cp
	}
	if s.CurrentUser != nil {
		cu := *s.CurrentUser
		out.CurrentUser = &cu
	}
	return out
}

// StateStore persists the whole blog state under a fixed storage key.
type StateStore interface {
	// Load returns the previously saved state, or ErrNotFound if none exists.
	Load(ctx context.Context) (*BlogState, error)
	// Save replaces the stored state with the given tree.
	Save(ctx context.Context, state *BlogState) error
}
