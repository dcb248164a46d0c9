// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// Category represents a design-style grouping of portfolio projects.
// The ID doubles as the URL segment for category pages and as the join
// key referenced by Project.CategoryID.
type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Slug        string   `yaml:"slug,omitempty" json:"slug,omitempty"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Images      ImageSet `yaml:"images" json:"images"`
}

// ImageSet maps viewport classes to image URLs or local asset paths.
// References are passed through as-is; no existence or format checking
// happens server-side; a broken reference only surfaces in the browser.
type ImageSet struct {
	Thumbnail string `yaml:"thumbnail" json:"thumbnail"`
	Mobile    string `yaml:"mobile" json:"mobile"`
	Tablet    string `yaml:"tablet" json:"tablet"`
	Desktop   string `yaml:"desktop" json:"desktop"`
}

// Validate checks the fields every category record must carry.
func (c *Category) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("category: missing id")
	}
	if c.Name == "" {
		return fmt.Errorf("category %q: missing name", c.ID)
	}
	return nil
}
