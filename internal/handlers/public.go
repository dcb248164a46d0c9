// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

// Package handlers contains the public route loaders: thin functions
// that look records up in the catalog, assemble page view-models, and
// hand them to the renderer. Lookup failures surface here as rendered
// 404 pages; nothing retries and nothing substitutes fallback content.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"griya/internal/cache"
	"griya/internal/catalog"
	"griya/internal/models"
	"griya/internal/render"
)

// relatedLimit caps the "Proyek Serupa" strip on project pages.
const relatedLimit = 3

// Public groups the handlers for the public-facing site. It checks the
// page cache before rendering and stores rendered results on miss; the
// cache may be nil, in which case every request renders.
type Public struct {
	catalog   *catalog.Catalog
	renderer  *render.Renderer
	pageCache *cache.PageCache
}

// NewPublic creates a Public handler group. pageCache may be nil when
// no Valkey host is configured.
func NewPublic(cat *catalog.Catalog, renderer *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{catalog: cat, renderer: renderer, pageCache: pageCache}
}

// Home renders the landing page: featured categories and featured projects.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := cache.PathKey(r.URL.Path)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	data := HomeData{
		Categories: p.catalog.Categories.Featured(catalog.DefaultFeaturedLimit),
		Projects:   p.catalog.Projects.Featured(catalog.DefaultFeaturedLimit),
	}
	p.render(w, r, key, "home", render.PageData{Section: "home", Data: data})
}

// ProjectsIndex handles /projects/{key}. The segment is a category id
// on the primary route; for backward compatibility with old links it
// also accepts a bare project slug (the legacy flat route) and renders
// that project directly.
func (p *Public) ProjectsIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := cache.PathKey(r.URL.Path)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	seg := chi.URLParam(r, "key")

	category, err := p.catalog.Categories.ByID(seg)
	if err == nil {
		data := CategoryData{
			Category: category,
			Projects: p.catalog.Projects.ByCategoryID(category.ID),
		}
		p.render(w, r, key, "category", render.PageData{
			Title:   category.Name,
			Section: "projects",
			Data:    data,
		})
		return
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		p.internalError(w, err)
		return
	}

	// Legacy flat route: /projects/{slug}.
	project, err := p.catalog.Projects.BySlug(seg)
	if err != nil {
		p.notFound(w, r,
			"Category not found",
			"Check the category URL or return to the projects page")
		return
	}
	p.renderProject(w, r, key, project)
}

// ProjectPage handles /projects/{category}/{slug}. The project must
// exist, belong to the category named in the path, and that category
// record must itself exist; any mismatch is a 404.
func (p *Public) ProjectPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := cache.PathKey(r.URL.Path)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	categoryID := chi.URLParam(r, "category")
	slug := chi.URLParam(r, "slug")

	project, err := p.catalog.Projects.BySlug(slug)
	if err != nil {
		p.notFound(w, r,
			"Project not found",
			"Check the project URL or return to the projects page")
		return
	}

	if project.CategoryID != categoryID {
		p.notFound(w, r,
			"Project not found in this category",
			"The project may exist in a different category")
		return
	}

	p.renderProject(w, r, key, project)
}

// NotFound is the router's fallback for unmatched paths.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.notFound(w, r, "Page not found", "Check the URL or return to the homepage")
}

// renderProject builds the full project view-model (category, related
// projects, tour) and renders it.
func (p *Public) renderProject(w http.ResponseWriter, r *http.Request, key string, project *models.Project) {
	category, err := p.catalog.Categories.ByID(project.CategoryID)
	if err != nil {
		// The project points at a category record that does not
		// exist. Validation should have caught this before deploy;
		// at request time it is still just a 404.
		p.notFound(w, r,
			"Category not found for this project",
			"There may be an issue with the project data")
		return
	}

	tourView, err := buildTourView(project)
	if err != nil {
		p.internalError(w, err)
		return
	}

	data := ProjectData{
		Project:  project,
		Category: category,
		Related:  p.catalog.Projects.Related(project, relatedLimit),
		Tour:     tourView,
	}
	p.render(w, r, key, "project", render.PageData{
		Title:   singleLineTitle(project.Title),
		Section: "projects",
		Data:    data,
	})
}

// render executes a page template, fills the cache, and writes the response.
func (p *Public) render(w http.ResponseWriter, r *http.Request, key, page string, data render.PageData) {
	out, err := p.renderer.Render(page, data)
	if err != nil {
		p.internalError(w, err)
		return
	}
	p.pageCache.Set(r.Context(), key, out)
	writeHTML(w, http.StatusOK, out)
}

// notFound renders the 404 page with a human-readable message and hint.
// 404 responses are never cached.
func (p *Public) notFound(w http.ResponseWriter, r *http.Request, message, hint string) {
	out, err := p.renderer.Render("notfound", render.PageData{
		Title: "404",
		Data:  NotFoundData{Message: message, Hint: hint},
	})
	if err != nil {
		slog.Error("render 404 page failed", "error", err)
		http.NotFound(w, r)
		return
	}
	writeHTML(w, http.StatusNotFound, out)
}

func (p *Public) internalError(w http.ResponseWriter, err error) {
	slog.Error("page render failed", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
