// Package router sets up the HTTP routes and middleware chain for the
// Griya portfolio site. Every route is a read-only page; there is no
// admin surface and no mutating endpoint.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"griya/internal/handlers"
	"griya/internal/middleware"
	"griya/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. Recoverer sits
	// inside Logger so a recovered panic still produces an access-log
	// line with its 500 status; WithRequestID runs first so the id is
	// in the context by the time Logger reads it.
	r.Use(middleware.WithRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		// The static tree is embedded at compile time; a missing
		// subdirectory can only mean a broken build.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Public pages.
	r.Get("/", public.Home)
	// {key} is a category id, or a bare project slug on legacy links.
	r.Get("/projects/{key}", public.ProjectsIndex)
	r.Get("/projects/{category}/{slug}", public.ProjectPage)

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
