// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Page templates are embedded at build time and paired with the base
// layout once, at startup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"
	"strings"

	"griya/internal/markdown"
	"griya/internal/models"
	"griya/internal/tour"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title   string // Page title for the <title> tag
	Section string // Active nav section ("home", "projects")
	Data    any    // Page-specific view model
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// markdown renders a content section body to HTML. Render
		// failures degrade to escaped plain text rather than a broken page.
		"markdown": func(source string) template.HTML {
			out, err := markdown.ToHTML(source)
			if err != nil {
				slog.Warn("markdown render failed", "error", err)
				return template.HTML(template.HTMLEscapeString(source))
			}
			return template.HTML(out)
		},
		// statusLabel maps a project status to its display label.
		"statusLabel": func(s models.Status) string {
			return s.Label()
		},
		// glyph resolves a hotspot icon name, with the default fallback.
		"glyph": tour.Glyph,
		// titleLines splits the authored multi-line project titles.
		"titleLines": func(title string) []string {
			return strings.Split(title, "\n")
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" {
			continue
		}
		page := strings.TrimSuffix(name, filepath.Ext(name))
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// Render executes the named page template with the given data and
// returns the full HTML document.
func (r *Renderer) Render(page string, data PageData) ([]byte, error) {
	tmpl, ok := r.templates[page]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", page, err)
	}
	return buf.Bytes(), nil
}
