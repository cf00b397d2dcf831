package handler

import (
	"net/http"
	"strconv"

	"github.com/jmorel/devfolio/internal/blog"
	"github.com/jmorel/devfolio/internal/domain"
)

// PostHandler handles blog-post HTTP requests.
type PostHandler struct {
	store *blog.Store
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(store *blog.Store) *PostHandler {
	return &PostHandler{store: store}
}

// HandleList returns posts matching the query filters.
// GET /api/posts?published=true&tag=CSS&author=<id>&q=grid
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var filter blog.PostFilter

	if v := r.URL.Query().Get("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "published must be true or false.")
			return
		}
		filter.Published = &published
	}
	filter.Tag = r.URL.Query().Get("tag")
	filter.AuthorID = r.URL.Query().Get("author")
	filter.Query = r.URL.Query().Get("q")

	posts := h.store.Posts(filter)
	if posts == nil {
		posts = []domain.Post{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// HandleCreate creates a post authored by the current user.
// POST /api/posts
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Title, content, and excerpt are required.")
		return
	}

	post, err := h.store.CreatePost(r.Context(), blog.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		VideoURL:   req.VideoURL,
		Tags:       req.Tags,
		Published:  req.Published,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"post": post})
}

// HandleGet returns a single post.
// GET /api/posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.GetPost(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// HandleUpdate applies a partial update to a post. Admin or the post's author.
// PUT /api/posts/{id}
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid post fields.")
		return
	}

	post, err := h.store.UpdatePost(r.Context(), r.PathValue("id"), blog.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		VideoURL:   req.VideoURL,
		Tags:       req.Tags,
		Published:  req.Published,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// HandleDelete removes a post. Admin or the post's author.
// DELETE /api/posts/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePost(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
