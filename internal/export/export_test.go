// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package export_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"griya/internal/catalog"
	"griya/internal/export"
	"griya/internal/handlers"
	"griya/internal/render"
	"griya/internal/router"
)

func newExporter(t *testing.T, outDir string) (*export.Exporter, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New() failed: %v", err)
	}
	r := router.New(handlers.NewPublic(cat, renderer, nil))
	return export.New(cat, r, outDir), cat
}

func TestPaths(t *testing.T) {
	e, cat := newExporter(t, t.TempDir())

	paths := e.Paths()
	// Home, one per category, one per project under its category, one
	// legacy flat path per project.
	want := 1 + len(cat.Categories.All()) + 2*len(cat.Projects.All())
	if len(paths) != want {
		t.Fatalf("Paths() returned %d entries, want %d", len(paths), want)
	}

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			t.Errorf("Paths() enumerated %q twice", p)
		}
		seen[p] = true
	}
	for _, p := range []string{
		"/",
		"/projects/japandi",
		"/projects/japandi/modern-minimalist-house",
		"/projects/modern-minimalist-house",
	} {
		if !seen[p] {
			t.Errorf("Paths() is missing %q", p)
		}
	}
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	e, _ := newExporter(t, out)

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for _, path := range e.Paths() {
		file := filepath.Join(out, filepath.FromSlash(path), "index.html")
		data, err := os.ReadFile(file)
		if err != nil {
			t.Errorf("exported page missing for %s: %v", path, err)
			continue
		}
		if !strings.Contains(string(data), "<!DOCTYPE html>") {
			t.Errorf("export for %s is not a full document", path)
		}
	}

	if _, err := os.Stat(filepath.Join(out, "static", "styles.css")); err != nil {
		t.Errorf("static assets were not copied: %v", err)
	}
}

func TestRunAbortsOnFailure(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}

	// A handler that refuses everything simulates a broken page render.
	broken := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	out := t.TempDir()
	e := export.New(cat, broken, out)
	if err := e.Run(context.Background()); err == nil {
		t.Fatal("Run() should fail when a page does not render")
	}

	if _, err := os.Stat(filepath.Join(out, "static")); !os.IsNotExist(err) {
		t.Error("static assets should not be copied after a failed export")
	}
}

func TestRunHonorsContext(t *testing.T) {
	e, _ := newExporter(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Run(ctx); err != context.Canceled {
		t.Errorf("Run() with cancelled context = %v, want context.Canceled", err)
	}
}
