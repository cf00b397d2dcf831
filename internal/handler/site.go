package handler

import (
	"net/http"

	"github.com/jmorel/devfolio/internal/blog"
	"github.com/jmorel/devfolio/internal/domain"
	"github.com/jmorel/devfolio/internal/site"
)

// SiteHandler serves the portfolio content and the contact form.
type SiteHandler struct {
	site  *site.Service
	store *blog.Store
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(siteSvc *site.Service, store *blog.Store) *SiteHandler {
	return &SiteHandler{site: siteSvc, store: store}
}

// HandleProfile returns the hero-section copy.
// GET /api/site/profile
func (h *SiteHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"profile": h.site.Profile()})
}

// HandleSkills returns all skill categories.
// GET /api/site/skills
func (h *SiteHandler) HandleSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"skills": h.site.Skills()})
}

// HandleProjects returns the portfolio projects, optionally filtered.
// GET /api/site/projects?technology=React
func (h *SiteHandler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.site.Projects(r.URL.Query().Get("technology"))
	if projects == nil {
		projects = []site.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// HandleContactSubmit validates and stores a contact-form submission.
// POST /api/contact
// Request: {"name":"...","email":"...","subject":"...","message":"..."}
func (h *SiteHandler) HandleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Name, a valid email, subject, and message are required.")
		return
	}

	msg := domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.site.SubmitContact(r.Context(), &msg); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": msg})
}

// HandleContactList returns the contact inbox. Admin only.
// GET /api/contact
func (h *SiteHandler) HandleContactList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.site.ListContacts(r.Context(), h.store.CurrentUser())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if msgs == nil {
		msgs = []domain.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}
