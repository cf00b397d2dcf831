package handler

import (
	"net/http"

	"github.com/jmorel/devfolio/internal/blog"
	"github.com/jmorel/devfolio/internal/notify"
	"github.com/jmorel/devfolio/internal/site"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, store *blog.Store, siteSvc *site.Service, hub *notify.Hub, loginLimit, contactLimit *TokenBucket) {
	auth := NewAuthHandler(store)
	users := NewUserHandler(store)
	posts := NewPostHandler(store)
	sh := NewSiteHandler(siteSvc, store)
	events := NewEventsHandler(hub)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /api/events", events.HandleEvents)

	mux.HandleFunc("POST /api/auth/login", RateLimit(loginLimit, auth.HandleLogin))
	mux.HandleFunc("POST /api/auth/logout", auth.HandleLogout)
	mux.HandleFunc("GET /api/auth/me", auth.HandleMe)

	mux.HandleFunc("GET /api/users", users.HandleList)
	mux.HandleFunc("POST /api/users", users.HandleCreate)
	mux.HandleFunc("GET /api/users/{id}", users.HandleGet)
	mux.HandleFunc("PUT /api/users/{id}", users.HandleUpdate)
	mux.HandleFunc("DELETE /api/users/{id}", users.HandleDelete)

	mux.HandleFunc("GET /api/posts", posts.HandleList)
	mux.HandleFunc("POST /api/posts", posts.HandleCreate)
	mux.HandleFunc("GET /api/posts/{id}", posts.HandleGet)
	mux.HandleFunc("PUT /api/posts/{id}", posts.HandleUpdate)
	mux.HandleFunc("DELETE /api/posts/{id}", posts.HandleDelete)

	mux.HandleFunc("GET /api/site/profile", sh.HandleProfile)
	mux.HandleFunc("GET /api/site/skills", sh.HandleSkills)
	mux.HandleFunc("GET /api/site/projects", sh.HandleProjects)

	mux.HandleFunc("POST /api/contact", RateLimit(contactLimit, sh.HandleContactSubmit))
	mux.HandleFunc("GET /api/contact", sh.HandleContactList)
}
