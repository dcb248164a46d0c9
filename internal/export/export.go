// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

// Package export pre-renders the whole site to static files. Paths are
// enumerated directly off the catalog stores, with no separate sitemap
// source of truth, and each one is replayed through the real router, so
// exported pages can never drift from served pages.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"griya/internal/catalog"
	"griya/web"
)

// Exporter writes a static rendition of the site to an output directory.
type Exporter struct {
	catalog *catalog.Catalog
	handler http.Handler
	outDir  string
}

// New creates an Exporter that renders through the given handler, which
// should be the production router.
func New(cat *catalog.Catalog, handler http.Handler, outDir string) *Exporter {
	return &Exporter{catalog: cat, handler: handler, outDir: outDir}
}

// Paths enumerates every pre-renderable route: the home page, one page
// per category id, one per (categoryId, slug) pair, and one per legacy
// flat slug.
func (e *Exporter) Paths() []string {
	paths := []string{"/"}
	for _, c := range e.catalog.Categories.All() {
		paths = append(paths, "/projects/"+c.ID)
	}
	for _, p := range e.catalog.Projects.All() {
		paths = append(paths, "/projects/"+p.CategoryID+"/"+p.Slug)
	}
	for _, p := range e.catalog.Projects.All() {
		paths = append(paths, "/projects/"+p.Slug)
	}
	return paths
}

// Run renders every enumerated path and writes it as
// <outDir>/<path>/index.html, then copies the embedded static assets.
// Any non-200 response aborts the export: a page that cannot render is
// a build failure, not something to publish around.
func (e *Exporter) Run(ctx context.Context) error {
	for _, path := range e.Paths() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.renderPath(path); err != nil {
			return err
		}
	}
	if err := e.copyStatic(); err != nil {
		return err
	}
	slog.Info("export complete", "pages", len(e.Paths()), "dir", e.outDir)
	return nil
}

func (e *Exporter) renderPath(path string) error {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return fmt.Errorf("export %s: unexpected status %d", path, rec.Code)
	}

	dir := filepath.Join(e.outDir, filepath.FromSlash(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	file := filepath.Join(dir, "index.html")
	if err := os.WriteFile(file, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	slog.Debug("exported page", "path", path, "bytes", rec.Body.Len())
	return nil
}

// copyStatic mirrors the embedded static tree into <outDir>/static/.
func (e *Exporter) copyStatic() error {
	return fs.WalkDir(web.StaticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(e.outDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(web.StaticFS, path)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", path, err)
		}
		return os.WriteFile(target, data, 0o644)
	})
}
