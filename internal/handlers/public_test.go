// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"griya/internal/catalog"
	"griya/internal/handlers"
	"griya/internal/render"
	"griya/internal/router"
)

// newSite wires the production router over the shipped dataset with no
// page cache, exactly as `griya export` runs it.
func newSite(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New() failed: %v", err)
	}
	return router.New(handlers.NewPublic(cat, renderer, nil))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	rec := get(t, newSite(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Japandi", "modern-minimalist-house"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page is missing %q", want)
		}
	}
}

func TestCategoryPage(t *testing.T) {
	site := newSite(t)

	rec := get(t, site, "/projects/japandi")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /projects/japandi status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"modern-minimalist-house", "scandinavian-style", "japanese-zen-house"} {
		if !strings.Contains(body, want) {
			t.Errorf("category page is missing project %q", want)
		}
	}
	// Projects from other categories must not leak in.
	if strings.Contains(body, "/projects/luxury/mediterranean-villa") {
		t.Error("category page leaked a project from another category")
	}
}

func TestProjectPage(t *testing.T) {
	site := newSite(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantSubstr string
	}{
		{
			name:       "project under its own category",
			path:       "/projects/japandi/modern-minimalist-house",
			wantStatus: http.StatusOK,
			wantSubstr: "MINIMALIST",
		},
		{
			name:       "project under the wrong category",
			path:       "/projects/luxury/modern-minimalist-house",
			wantStatus: http.StatusNotFound,
			wantSubstr: "Project not found in this category",
		},
		{
			name:       "unknown project slug",
			path:       "/projects/japandi/not-a-real-slug",
			wantStatus: http.StatusNotFound,
			wantSubstr: "Project not found",
		},
		{
			name:       "tour page includes scenes and hotspot labels",
			path:       "/projects/luxury/mediterranean-villa",
			wantStatus: http.StatusOK,
			wantSubstr: "Wine Cellar",
		},
		{
			name:       "project without a tour renders fine",
			path:       "/projects/modern/eco-house-concept",
			wantStatus: http.StatusOK,
			wantSubstr: "Dalam Proses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, site, tt.path)
			if rec.Code != tt.wantStatus {
				t.Fatalf("GET %s status = %d, want %d", tt.path, rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantSubstr) {
				t.Errorf("GET %s body is missing %q", tt.path, tt.wantSubstr)
			}
		})
	}
}

func TestProjectsIndexFallback(t *testing.T) {
	site := newSite(t)

	// A bare project slug on the one-segment route is a legacy link and
	// renders the project page directly.
	rec := get(t, site, "/projects/modern-minimalist-house")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /projects/modern-minimalist-house status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "MINIMALIST") {
		t.Error("legacy flat route did not render the project page")
	}

	// A segment that is neither a category id nor a slug is a 404, not a
	// panic or a blank page.
	rec = get(t, site, "/projects/not-a-real-slug")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /projects/not-a-real-slug status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Category not found") {
		t.Errorf("404 page is missing the message, got:\n%s", body)
	}
	if !strings.Contains(body, "return to the projects page") {
		t.Error("404 page is missing the hint")
	}
}

func TestNotFoundFallback(t *testing.T) {
	rec := get(t, newSite(t), "/no/such/page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /no/such/page status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Error("fallback 404 page is missing the message")
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, newSite(t), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("health body = %q", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := get(t, newSite(t), "/")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("X-Request-ID"); got == "" {
		t.Error("X-Request-ID header is missing")
	}
}
