// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"errors"
	"fmt"

	"griya/internal/tour"
)

// Validate runs the whole-store integrity pass: per-record invariants,
// id and slug uniqueness, project→category referential integrity, and
// tour graph construction for every project that carries one. All
// defects are collected and joined so a single run reports everything.
//
// This is the pre-deploy gate (`griya validate`); the server also runs
// it at startup and refuses to serve a broken dataset.
func (c *Catalog) Validate() error {
	var defects []error

	seenCategory := make(map[string]bool)
	for i := range c.Categories.ordered {
		cat := &c.Categories.ordered[i]
		if err := cat.Validate(); err != nil {
			defects = append(defects, err)
		}
		if seenCategory[cat.ID] {
			defects = append(defects, fmt.Errorf("category %q: duplicate id", cat.ID))
		}
		seenCategory[cat.ID] = true
	}

	seenSlug := make(map[string]bool)
	for i := range c.Projects.ordered {
		p := &c.Projects.ordered[i]
		if err := p.Validate(); err != nil {
			defects = append(defects, err)
		}
		if p.Slug != "" {
			if seenSlug[p.Slug] {
				defects = append(defects, fmt.Errorf("project %q: duplicate slug", p.Slug))
			}
			seenSlug[p.Slug] = true
			// Category ids and project slugs share the /projects/{key}
			// URL namespace, where the category wins. A colliding slug
			// would shadow the project's flat link.
			if seenCategory[p.Slug] {
				defects = append(defects, fmt.Errorf("project %q: slug collides with a category id", p.Slug))
			}
		}
		if p.CategoryID != "" && !seenCategory[p.CategoryID] {
			defects = append(defects, fmt.Errorf("project %q: categoryId %q does not exist", p.Slug, p.CategoryID))
		}
		if _, err := tour.Build(p); err != nil {
			defects = append(defects, err)
		}
	}

	return errors.Join(defects...)
}
