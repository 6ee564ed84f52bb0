// Package setup defines the static scene: the station table, the spawn
// point, and the decorative network routes between stations. Stations are
// immutable once built; ids must match section ids in the content document.
package setup

import (
	"image/color"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/game/station"
)

// Station marker palette, one accent per section group.
var (
	colorSummary   = color.RGBA{100, 200, 255, 255} // Cyan for the intro
	colorWork      = color.RGBA{180, 150, 250, 255} // Purple for career entries
	colorCraft     = color.RGBA{100, 255, 150, 255} // Green for skills/projects
	colorCommunity = color.RGBA{255, 200, 100, 255} // Amber for talks/open source
	colorContact   = color.RGBA{255, 120, 150, 255} // Pink for contact
)

// stationDefs is the fixed layout within the 1600x1000 world, a loose ring
// the avatar can walk in either direction.
var stationDefs = []station.Station{
	{ID: "summary", Label: "Summary", Anchor: geometry.Point{X: 800, Y: 220}, Color: colorSummary},
	{ID: "experience", Label: "Experience", Anchor: geometry.Point{X: 1240, Y: 330}, Color: colorWork},
	{ID: "projects", Label: "Projects", Anchor: geometry.Point{X: 1330, Y: 650}, Color: colorCraft},
	{ID: "skills", Label: "Skills", Anchor: geometry.Point{X: 990, Y: 810}, Color: colorCraft},
	{ID: "education", Label: "Education", Anchor: geometry.Point{X: 610, Y: 810}, Color: colorWork},
	{ID: "talks", Label: "Talks", Anchor: geometry.Point{X: 280, Y: 660}, Color: colorCommunity},
	{ID: "opensource", Label: "Open Source", Anchor: geometry.Point{X: 220, Y: 350}, Color: colorCommunity},
	{ID: "contact", Label: "Contact", Anchor: geometry.Point{X: 490, Y: 180}, Color: colorContact},
}

// Stations builds the station list in enumeration order (the order used for
// proximity tie-breaks and the sidebar index).
func Stations() []*station.Station {
	out := make([]*station.Station, len(stationDefs))
	for i := range stationDefs {
		s := stationDefs[i]
		out[i] = &s
	}
	return out
}

// Spawn is where the avatar starts: center of the ring, near no station.
func Spawn() geometry.Point {
	return geometry.Point{X: 800, Y: 520}
}

// Route is one decorative network line between two stations, with a pulse
// phase offset so the traveling dots don't march in lockstep.
type Route struct {
	Points      []geometry.Point
	PhaseOffset float64
}

// Routes connects the ring plus two cross-links, as orthogonal polylines.
func Routes() []Route {
	defs := []struct {
		from, to string
		offset   float64
	}{
		{"summary", "experience", 0},
		{"experience", "projects", 0.13},
		{"projects", "skills", 0.26},
		{"skills", "education", 0.39},
		{"education", "talks", 0.52},
		{"talks", "opensource", 0.65},
		{"opensource", "contact", 0.78},
		{"contact", "summary", 0.91},
		{"summary", "skills", 0.45}, // cross-links
		{"opensource", "projects", 0.2},
	}

	anchors := make(map[string]geometry.Point, len(stationDefs))
	for _, s := range stationDefs {
		anchors[s.ID] = s.Anchor
	}

	out := make([]Route, 0, len(defs))
	for _, d := range defs {
		out = append(out, Route{
			Points:      geometry.ElbowPath(anchors[d.from], anchors[d.to]),
			PhaseOffset: d.offset,
		})
	}
	return out
}
