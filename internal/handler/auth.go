package handler

import (
	"errors"
	"net/http"

	"github.com/jmorel/devfolio/internal/blog"
	"github.com/jmorel/devfolio/internal/domain"
)

// AuthHandler handles session-related HTTP requests.
type AuthHandler struct {
	store *blog.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *blog.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// HandleLogin makes the user with the given email the current user.
// POST /api/auth/login
// Request:  {"email":"..."}
// Response: {"user": {...}} or 401
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "A valid email address is required.")
		return
	}

	user, err := h.store.Login(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "User not found.")
			return
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// HandleLogout clears the current user.
// POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the current user.
// GET /api/auth/me
// Response: {"user": {...}} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := h.store.CurrentUser()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not logged in.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
