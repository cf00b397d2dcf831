package handler

import (
	"net/http"

	"github.com/jmorel/devfolio/internal/blog"
	"github.com/jmorel/devfolio/internal/domain"
)

// UserHandler handles user-management HTTP requests.
type UserHandler struct {
	store *blog.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store *blog.Store) *UserHandler {
	return &UserHandler{store: store}
}

// HandleList returns every user in creation order.
// GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"users": h.store.Users()})
}

// HandleCreate creates a new user. Admin only.
// POST /api/users
// Request: {"username":"...","email":"...","role":"admin|author|reader","avatar":"..."}
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Username, a valid email, and a valid role are required.")
		return
	}

	user, err := h.store.CreateUser(r.Context(), blog.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

// HandleGet returns a single user.
// GET /api/users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// HandleUpdate applies a partial update to a user.
// PUT /api/users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid user fields.")
		return
	}

	in := blog.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Avatar:   req.Avatar,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		in.Role = &role
	}

	user, err := h.store.UpdateUser(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// HandleDelete removes a user and reassigns their posts. Admin only; the
// currently logged-in user cannot be deleted.
// DELETE /api/users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
