// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

// Package catalog holds the studio's portfolio dataset. Categories and
// projects are authored as YAML, compiled into the binary, and loaded
// once at startup into read-only stores with constant-time id and slug
// indexes. Nothing mutates the stores after Load, so every method is
// safe for unlimited concurrent use without locking.
package catalog

import (
	"embed"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"griya/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrNotFound is returned by every lookup that yields no match. Handlers
// translate it into a rendered 404; nothing below the handler layer
// retries or substitutes fallback content.
var ErrNotFound = errors.New("not found")

// DefaultFeaturedLimit caps the featured sections on the home page.
const DefaultFeaturedLimit = 5

// Catalog bundles the two stores loaded from the embedded dataset.
type Catalog struct {
	Categories *CategoryStore
	Projects   *ProjectStore
}

// Load parses the embedded YAML dataset and builds the lookup indexes.
// It does not run the integrity pass; call Validate separately so the
// CLI can report every defect instead of stopping at the first.
func Load() (*Catalog, error) {
	var cats struct {
		Categories []models.Category `yaml:"categories"`
	}
	if err := parseFile("data/categories.yaml", &cats); err != nil {
		return nil, err
	}

	var projs struct {
		Projects []models.Project `yaml:"projects"`
	}
	if err := parseFile("data/projects.yaml", &projs); err != nil {
		return nil, err
	}

	return &Catalog{
		Categories: newCategoryStore(cats.Categories),
		Projects:   newProjectStore(projs.Projects),
	}, nil
}

func parseFile(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// CategoryStore is the ordered, immutable list of design-style
// categories with id and slug indexes built once at load.
type CategoryStore struct {
	ordered []models.Category
	byID    map[string]*models.Category
	bySlug  map[string]*models.Category
}

func newCategoryStore(categories []models.Category) *CategoryStore {
	s := &CategoryStore{
		ordered: categories,
		byID:    make(map[string]*models.Category, len(categories)),
		bySlug:  make(map[string]*models.Category, len(categories)),
	}
	for i := range s.ordered {
		c := &s.ordered[i]
		if _, dup := s.byID[c.ID]; !dup {
			s.byID[c.ID] = c
		}
		// Not every category carries a slug; those are simply absent
		// from the slug index.
		if c.Slug != "" {
			if _, dup := s.bySlug[c.Slug]; !dup {
				s.bySlug[c.Slug] = c
			}
		}
	}
	return s
}

// All returns every category in store order.
func (s *CategoryStore) All() []models.Category {
	return s.ordered
}

// ByID returns the category with the given id, or ErrNotFound.
func (s *CategoryStore) ByID(id string) (*models.Category, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("category %q: %w", id, ErrNotFound)
}

// BySlug returns the category with the given slug. Records without a
// slug never match; that is an absent result, not a fault.
func (s *CategoryStore) BySlug(slug string) (*models.Category, error) {
	if slug != "" {
		if c, ok := s.bySlug[slug]; ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("category slug %q: %w", slug, ErrNotFound)
}

// Featured returns the first limit categories in store order. There is
// no ranking; store order is the editorial order.
func (s *CategoryStore) Featured(limit int) []models.Category {
	if limit <= 0 || limit > len(s.ordered) {
		limit = len(s.ordered)
	}
	return s.ordered[:limit]
}

// ProjectStore is the ordered, immutable list of portfolio projects
// with a slug index built once at load.
type ProjectStore struct {
	ordered []models.Project
	bySlug  map[string]*models.Project
}

func newProjectStore(projects []models.Project) *ProjectStore {
	s := &ProjectStore{
		ordered: projects,
		bySlug:  make(map[string]*models.Project, len(projects)),
	}
	for i := range s.ordered {
		p := &s.ordered[i]
		// First match wins on duplicate slugs. Duplicates are a
		// data-authoring error that Validate reports.
		if _, dup := s.bySlug[p.Slug]; !dup {
			s.bySlug[p.Slug] = p
		}
	}
	return s
}

// All returns every project in store order.
func (s *ProjectStore) All() []models.Project {
	return s.ordered
}

// BySlug returns the project with the given slug, matched exactly and
// case-sensitively, or ErrNotFound.
func (s *ProjectStore) BySlug(slug string) (*models.Project, error) {
	if p, ok := s.bySlug[slug]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("project %q: %w", slug, ErrNotFound)
}

// ByCategoryID returns the projects in a category, preserving store
// order. An empty result is not an error.
func (s *ProjectStore) ByCategoryID(categoryID string) []models.Project {
	var out []models.Project
	for _, p := range s.ordered {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// ByStatus returns the projects with an exactly matching status,
// preserving store order.
func (s *ProjectStore) ByStatus(status models.Status) []models.Project {
	var out []models.Project
	for _, p := range s.ordered {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns up to limit projects flagged as featured, preserving
// store order. limit <= 0 means no cap.
func (s *ProjectStore) Featured(limit int) []models.Project {
	var out []models.Project
	for _, p := range s.ordered {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Related returns up to limit projects that share a category with p,
// excluding p itself, preserving store order.
func (s *ProjectStore) Related(p *models.Project, limit int) []models.Project {
	var out []models.Project
	for _, other := range s.ordered {
		if other.CategoryID != p.CategoryID || other.ID == p.ID {
			continue
		}
		out = append(out, other)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
