// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// Status represents the delivery state of a project.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// statusLabels holds the Indonesian display labels shown on project pages.
var statusLabels = map[Status]string{
	StatusPlanning:   "Perencanaan",
	StatusInProgress: "Dalam Proses",
	StatusCompleted:  "Selesai",
}

// Label returns the display label for a status, falling back to the raw
// value for anything outside the known vocabulary.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether the status is one of the known delivery states.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Project is one portfolio entry. All records are authored at build time
// and treated as immutable for the process lifetime.
type Project struct {
	ID          int               `yaml:"id" json:"id"`
	Slug        string            `yaml:"slug" json:"slug"`
	CategoryID  string            `yaml:"categoryId" json:"category_id"`
	Title       string            `yaml:"title" json:"title"`
	Location    string            `yaml:"location" json:"location"`
	Year        int               `yaml:"year" json:"year"`
	Month       string            `yaml:"month,omitempty" json:"month,omitempty"`
	Description string            `yaml:"description" json:"description"`
	Features    []string          `yaml:"features" json:"features"`
	Client      string            `yaml:"client" json:"client"`
	Status      Status            `yaml:"status" json:"status"`
	Featured    bool              `yaml:"featured,omitempty" json:"featured,omitempty"`
	Stats       map[string]string `yaml:"stats,omitempty" json:"stats,omitempty"`
	Details     map[string]string `yaml:"projectDetails,omitempty" json:"project_details,omitempty"`
	Images      ImageSet          `yaml:"images" json:"images"`

	// ContentSections are long-form narrative blocks rendered in order.
	ContentSections []ContentSection `yaml:"contentSections,omitempty" json:"content_sections,omitempty"`

	// Panoramic maps scene names to 360° image references. Absent means
	// the project has no interactive tour. Hotspots must be present iff
	// Panoramic is.
	Panoramic map[string]string `yaml:"panoramic,omitempty" json:"panoramic,omitempty"`
	Hotspots  []Hotspot         `yaml:"hotspots,omitempty" json:"hotspots,omitempty"`
}

// ContentSection is one long-form narrative block on a project page.
// Content is Markdown.
type ContentSection struct {
	Title            string `yaml:"title" json:"title"`
	Image            string `yaml:"image,omitempty" json:"image,omitempty"`
	ImageDescription string `yaml:"imageDescription,omitempty" json:"image_description,omitempty"`
	Content          string `yaml:"content" json:"content"`
}

// HasTour reports whether the project carries a panoramic tour.
func (p *Project) HasTour() bool {
	return len(p.Panoramic) > 0
}

// Validate checks record-level invariants that do not need the category
// store: identity fields, status vocabulary, and the panoramic/hotspots
// pairing. Cross-store integrity is the catalog's job.
func (p *Project) Validate() error {
	if p.Slug == "" {
		return fmt.Errorf("project %d: missing slug", p.ID)
	}
	if p.CategoryID == "" {
		return fmt.Errorf("project %q: missing categoryId", p.Slug)
	}
	if p.Title == "" {
		return fmt.Errorf("project %q: missing title", p.Slug)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("project %q: unknown status %q", p.Slug, p.Status)
	}
	if len(p.Hotspots) > 0 && len(p.Panoramic) == 0 {
		return fmt.Errorf("project %q: hotspots without panoramic scenes", p.Slug)
	}
	for i := range p.Hotspots {
		if err := p.Hotspots[i].Validate(); err != nil {
			return fmt.Errorf("project %q: hotspot %d: %w", p.Slug, i, err)
		}
	}
	return nil
}
