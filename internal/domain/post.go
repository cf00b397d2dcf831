package domain

import "time"

// Post is a blog entry. Author is a snapshot of the owning user taken at the
// last write that touched authorship: it is copied in on creation and rewritten
// wholesale when the author is deleted, but it is NOT refreshed when the user
// record is edited. Consumers must treat it as a point-in-time copy, not a join.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	Author     User      `json:"author"`
	CoverImage string    `json:"coverImage,omitempty"`
	VideoURL   string    `json:"videoUrl,omitempty"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Published  bool      `json:"published"`
}
