package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmorel/devfolio/internal/domain"
	"github.com/jmorel/devfolio/internal/notify"
)

// CreatePostInput carries the caller-supplied fields for a new post. ID,
// author, and both timestamps are allocated by the store.
type CreatePostInput struct {
	Title      string
	Content    string
	Excerpt    string
	CoverImage string
	VideoURL   string
	Tags       []string
	Published  bool
}

// UpdatePostInput is a partial update; nil fields keep their current value.
// ID, author, and CreatedAt cannot be changed through an update.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Excerpt    *string
	CoverImage *string
	VideoURL   *string
	Tags       *[]string
	Published  *bool
}

// CreatePost appends a new post authored by the current user. The author field
// is a snapshot of the current user at creation time, not a live reference.
func (s *Store) CreatePost(ctx context.Context, in CreatePostInput) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		s.notify("Create post failed", "You must be logged in to create a post", notify.VariantDestructive)
		return nil, fmt.Errorf("%w: you must be logged in to create a post", domain.ErrNotLoggedIn)
	}

	now := s.now()
	post := domain.Post{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		Author:     *s.state.CurrentUser,
		CoverImage: in.CoverImage,
		VideoURL:   NormalizeVideoURL(in.VideoURL),
		Tags:       append([]string{}, in.Tags...),
		CreatedAt:  now,
		UpdatedAt:  now,
		Published:  in.Published,
	}
	s.state.Posts = append(s.state.Posts, post)
	s.persist(ctx)
	s.notify("Post created", fmt.Sprintf("%q has been created successfully", post.Title), notify.VariantDefault)

	out := post
	out.Tags = append([]string(nil), post.Tags...)
	return &out, nil
}

// UpdatePost shallow-merges the given fields into an existing post and bumps
// UpdatedAt. Only an admin or the post's current author may update it.
func (s *Store) UpdatePost(ctx context.Context, id string, in UpdatePostInput) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.postIndex(id)
	if idx < 0 {
		s.notify("Update failed", "Post not found", notify.VariantDestructive)
		return nil, fmt.Errorf("%w: post not found", domain.ErrNotFound)
	}
	if !s.canModifyPost(&s.state.Posts[idx]) {
		s.notify("Update failed", "You do not have permission to edit this post", notify.VariantDestructive)
		return nil, fmt.Errorf("%w: you do not have permission to edit this post", domain.ErrForbidden)
	}

	post := s.state.Posts[idx]
	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.CoverImage != nil {
		post.CoverImage = *in.CoverImage
	}
	if in.VideoURL != nil {
		post.VideoURL = NormalizeVideoURL(*in.VideoURL)
	}
	if in.Tags != nil {
		post.Tags = append([]string{}, (*in.Tags)...)
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	post.UpdatedAt = s.now()

	s.state.Posts[idx] = post
	s.persist(ctx)
	s.notify("Post updated", fmt.Sprintf("%q has been updated successfully", post.Title), notify.VariantDefault)

	out := post
	out.Tags = append([]string(nil), post.Tags...)
	return &out, nil
}

// DeletePost removes a post. Only an admin or the post's current author may
// delete it.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.postIndex(id)
	if idx < 0 {
		s.notify("Delete failed", "Post not found", notify.VariantDestructive)
		return fmt.Errorf("%w: post not found", domain.ErrNotFound)
	}
	if !s.canModifyPost(&s.state.Posts[idx]) {
		s.notify("Delete failed", "You do not have permission to delete this post", notify.VariantDestructive)
		return fmt.Errorf("%w: you do not have permission to delete this post", domain.ErrForbidden)
	}

	title := s.state.Posts[idx].Title
	s.state.Posts = append(s.state.Posts[:idx], s.state.Posts[idx+1:]...)
	s.persist(ctx)
	s.notify("Post deleted", fmt.Sprintf("%q has been deleted successfully", title), notify.VariantDefault)
	return nil
}

// GetPost is a pure lookup with no side effects.
func (s *Store) GetPost(id string) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.postIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: post not found", domain.ErrNotFound)
	}
	p := s.state.Posts[idx]
	p.Tags = append([]string(nil), s.state.Posts[idx].Tags...)
	return &p, nil
}

// PostFilter narrows the result of Posts. Zero values match everything.
type PostFilter struct {
	Published *bool
	Tag       string
	AuthorID  string
	Query     string
}

// Posts returns copies of the posts matching the filter, in creation order.
func (s *Store) Posts(filter PostFilter) []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Post
	for i := range s.state.Posts {
		p := s.state.Posts[i]
		if !matchPost(&p, filter) {
			continue
		}
		p.Tags = append([]string(nil), p.Tags...)
		out = append(out, p)
	}
	return out
}

func matchPost(p *domain.Post, f PostFilter) bool {
	if f.Published != nil && p.Published != *f.Published {
		return false
	}
	if f.AuthorID != "" && p.Author.ID != f.AuthorID {
		return false
	}
	if f.Tag != "" && !containsTag(p.Tags, f.Tag) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Excerpt), q) &&
			!containsTagFold(p.Tags, q) {
			return false
		}
	}
	return true
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func containsTagFold(tags []string, lowered string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), lowered) {
			return true
		}
	}
	return false
}

// canModifyPost reports whether the current user is an admin or the post's
// author of record. Callers must hold s.mu.
func (s *Store) canModifyPost(p *domain.Post) bool {
	cu := s.state.CurrentUser
	if cu == nil {
		return false
	}
	return cu.Role == domain.RoleAdmin || p.Author.ID == cu.ID
}

// postIndex returns the position of the post with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) postIndex(id string) int {
	for i := range s.state.Posts {
		if s.state.Posts[i].ID == id {
			return i
		}
	}
	return -1
}
