// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

// Package tour derives the navigable panorama graph from a project's
// panoramic scenes and hotspots. Scenes are nodes, navigation hotspots
// are directed edges. The graph is a pure, read-only derivation: it
// holds no view state and is safe for concurrent use once built.
package tour

import (
	"fmt"
	"sort"

	"griya/internal/models"
)

// MalformedError reports a hotspot that references a scene absent from
// the project's panoramic map. It is a data-authoring defect: catch it
// with `griya validate` before deploy, never tolerate it at render time.
type MalformedError struct {
	ProjectSlug string
	Scene       string
	Field       string // "scene" or "targetScene"
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("project %q: hotspot %s %q does not exist in panoramic scenes",
		e.ProjectSlug, e.Field, e.Scene)
}

// Graph is the directed tour graph for a single project. Dead-end scenes
// and asymmetric reachability are legal; the authored data contains both.
type Graph struct {
	slug   string
	images map[string]string
	// edges and info keep hotspots grouped by source scene, preserving
	// the authored order within each scene.
	edges map[string][]models.Hotspot
	info  map[string][]models.Hotspot
}

// Build constructs the tour graph for a project. It returns (nil, nil)
// when the project has no panoramic scenes, and a *MalformedError when
// any hotspot references an unknown scene or targetScene.
func Build(p *models.Project) (*Graph, error) {
	if !p.HasTour() {
		return nil, nil
	}

	g := &Graph{
		slug:   p.Slug,
		images: p.Panoramic,
		edges:  make(map[string][]models.Hotspot),
		info:   make(map[string][]models.Hotspot),
	}

	for _, h := range p.Hotspots {
		if _, ok := p.Panoramic[h.Scene]; !ok {
			return nil, &MalformedError{ProjectSlug: p.Slug, Scene: h.Scene, Field: "scene"}
		}
		if h.IsNav() {
			if _, ok := p.Panoramic[h.TargetScene]; !ok {
				return nil, &MalformedError{ProjectSlug: p.Slug, Scene: h.TargetScene, Field: "targetScene"}
			}
			g.edges[h.Scene] = append(g.edges[h.Scene], h)
			continue
		}
		g.info[h.Scene] = append(g.info[h.Scene], h)
	}

	return g, nil
}

// Scenes returns all scene names in the graph, sorted for stable output.
func (g *Graph) Scenes() []string {
	names := make([]string, 0, len(g.images))
	for name := range g.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Image returns the panoramic image reference for a scene, or "" when
// the scene does not exist.
func (g *Graph) Image(scene string) string {
	return g.images[scene]
}

// HasScene reports whether the named scene is a node in the graph.
func (g *Graph) HasScene(scene string) bool {
	_, ok := g.images[scene]
	return ok
}

// From returns the navigation hotspots leaving a scene, in authored
// order. A dead-end scene yields an empty slice, not an error.
func (g *Graph) From(scene string) []models.Hotspot {
	return g.edges[scene]
}

// InfoHotspots returns the informational (non-navigation) hotspots for a
// scene, in authored order.
func (g *Graph) InfoHotspots(scene string) []models.Hotspot {
	return g.info[scene]
}

// Reachable returns the set of scenes reachable from start by following
// navigation edges, including start itself. The traversal keeps a
// visited set, so it terminates on cyclic graphs. An unknown start
// yields an empty set.
func (g *Graph) Reachable(start string) map[string]bool {
	reached := make(map[string]bool)
	if !g.HasScene(start) {
		return reached
	}

	queue := []string{start}
	reached[start] = true
	for len(queue) > 0 {
		scene := queue[0]
		queue = queue[1:]
		for _, h := range g.edges[scene] {
			if !reached[h.TargetScene] {
				reached[h.TargetScene] = true
				queue = append(queue, h.TargetScene)
			}
		}
	}
	return reached
}
