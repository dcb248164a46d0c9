// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"

	"griya/internal/models"
	"griya/internal/tour"
)

// HomeData is the view-model for the landing page.
type HomeData struct {
	Categories []models.Category
	Projects   []models.Project
}

// CategoryData is the view-model for a category listing page.
type CategoryData struct {
	Category *models.Category
	Projects []models.Project
}

// ProjectData is the view-model for a project detail page. Tour is nil
// for projects without a panoramic tour.
type ProjectData struct {
	Project  *models.Project
	Category *models.Category
	Related  []models.Project
	Tour     *TourView
}

// NotFoundData carries the message and hint shown on the 404 page.
type NotFoundData struct {
	Message string
	Hint    string
}

// TourView is the template-facing shape of a project's tour graph.
// "Current scene" is view state owned by the browser; the server only
// ships the scenes and their hotspot overlays.
type TourView struct {
	Start  string
	Scenes []SceneView
}

// SceneView is one panoramic scene with its clickable overlays.
type SceneView struct {
	Name  string
	Image string
	Nav   []models.Hotspot
	Info  []models.Hotspot
}

// buildTourView derives the tour view-model from a project. Returns
// (nil, nil) for projects without a tour. A malformed tour is a server
// error here: validation guarantees shipped data never triggers it.
func buildTourView(p *models.Project) (*TourView, error) {
	g, err := tour.Build(p)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}

	scenes := g.Scenes()
	view := &TourView{Start: startScene(scenes), Scenes: make([]SceneView, 0, len(scenes))}
	for _, name := range scenes {
		view.Scenes = append(view.Scenes, SceneView{
			Name:  name,
			Image: g.Image(name),
			Nav:   g.From(name),
			Info:  g.InfoHotspots(name),
		})
	}
	return view, nil
}

// startScene picks the scene the viewer opens on. The authored data
// names the entry scene "outside" or "exterior"; otherwise the first
// scene in sorted order serves.
func startScene(scenes []string) string {
	for _, preferred := range []string{"outside", "exterior"} {
		for _, s := range scenes {
			if s == preferred {
				return s
			}
		}
	}
	if len(scenes) > 0 {
		return scenes[0]
	}
	return ""
}

// singleLineTitle collapses the authored multi-line project titles for
// use in the <title> tag.
func singleLineTitle(title string) string {
	return strings.Join(strings.Split(title, "\n"), " ")
}
