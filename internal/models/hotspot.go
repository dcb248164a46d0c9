// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// HotspotType discriminates between navigation hotspots (edges in the
// tour graph) and informational markers.
type HotspotType string

const (
	HotspotNav  HotspotType = "nav"
	HotspotInfo HotspotType = "info"
)

// Hotspot is a clickable marker overlaid on a panoramic scene. X and Y
// are percentage offsets into the scene image, both in [0, 100].
// Navigation hotspots carry a TargetScene; informational ones do not.
type Hotspot struct {
	X           float64     `yaml:"x" json:"x"`
	Y           float64     `yaml:"y" json:"y"`
	Scene       string      `yaml:"scene" json:"scene"`
	Label       string      `yaml:"label" json:"label"`
	Type        HotspotType `yaml:"type" json:"type"`
	TargetScene string      `yaml:"targetScene,omitempty" json:"target_scene,omitempty"`
	Icon        string      `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// IsNav reports whether the hotspot navigates to another scene.
func (h *Hotspot) IsNav() bool {
	return h.Type == HotspotNav
}

// Validate checks the hotspot's own invariants: coordinate bounds, the
// type vocabulary, and the nav/targetScene pairing. Whether Scene and
// TargetScene actually exist in the panoramic map is the tour graph's
// concern, since it needs the full scene set.
func (h *Hotspot) Validate() error {
	if h.X < 0 || h.X > 100 {
		return fmt.Errorf("x %v out of range [0, 100]", h.X)
	}
	if h.Y < 0 || h.Y > 100 {
		return fmt.Errorf("y %v out of range [0, 100]", h.Y)
	}
	if h.Scene == "" {
		return fmt.Errorf("missing scene")
	}
	switch h.Type {
	case HotspotNav:
		if h.TargetScene == "" {
			return fmt.Errorf("nav hotspot %q: missing targetScene", h.Label)
		}
	case HotspotInfo:
		if h.TargetScene != "" {
			return fmt.Errorf("info hotspot %q: unexpected targetScene %q", h.Label, h.TargetScene)
		}
	default:
		return fmt.Errorf("unknown hotspot type %q", h.Type)
	}
	return nil
}
