// Package station defines the fixed points of interest on the map and the
// proximity query that decides which one the avatar is near.
package station

import (
	"image/color"

	"signalstation/pkg/engine/geometry"
)

// Station is a fixed world-space anchor tied to one resume section.
// Stations are created once at startup and never mutated.
type Station struct {
	// ID matches a section id in the content store.
	ID string

	// Anchor is the station's world position.
	Anchor geometry.Point

	// Label is the short name painted next to the station marker.
	Label string

	// Color tags the station marker and its callout border.
	Color color.RGBA
}

// Nearest returns the station closest to the avatar among those strictly
// within radius, or nil when none qualifies. Ties break to the first
// enumerated station. Pure query; the interaction machine owns the edge
// transitions.
func Nearest(avatar geometry.Point, stations []*Station, radius float64) *Station {
	var best *Station
	bestDist := radius
	for _, s := range stations {
		d := geometry.Dist(avatar, s.Anchor)
		if d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}
