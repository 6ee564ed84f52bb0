// Package callout decides where the floating station panel goes on screen
// and how its leader line connects back to the station anchor. Both halves
// are pure: the interaction machine feeds them screen-space inputs each tick
// and hands the results to the renderer.
package callout

import (
	"signalstation/pkg/engine/geometry"
)

// Quadrant identifies which diagonal placement relative to the anchor was
// chosen, in candidate enumeration order.
type Quadrant int

const (
	TopRight Quadrant = iota
	TopLeft
	BottomRight
	BottomLeft
)

func (q Quadrant) String() string {
	switch q {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	}
	return "unknown"
}

type candidate struct {
	rect geometry.Rect
	quad Quadrant
}

// candidates builds the four diagonal placements around the anchor, offset
// outward so the panel clears the station marker.
func candidates(anchor geometry.Point, size geometry.Size, offset float64) []candidate {
	return []candidate{
		{quad: TopRight, rect: geometry.Rect{
			Left: anchor.X + offset, Top: anchor.Y - offset - size.H, W: size.W, H: size.H}},
		{quad: TopLeft, rect: geometry.Rect{
			Left: anchor.X - offset - size.W, Top: anchor.Y - offset - size.H, W: size.W, H: size.H}},
		{quad: BottomRight, rect: geometry.Rect{
			Left: anchor.X + offset, Top: anchor.Y + offset, W: size.W, H: size.H}},
		{quad: BottomLeft, rect: geometry.Rect{
			Left: anchor.X - offset - size.W, Top: anchor.Y + offset, W: size.W, H: size.H}},
	}
}

// Place chooses the callout rectangle for a station anchor. All coordinates
// are screen space.
//
// The four diagonal candidates are filtered to those fully inside the
// viewport shrunk by padding; when none fit (station near a corner, tiny
// window) the full candidate set is used so the result stays deterministic.
// Among the survivors the one whose center is farthest from the avatar wins,
// ties keeping enumeration order, so the panel never crowds the player.
// Finally the origin is clamped per axis into
// [padding, viewport - size - padding]; for viewports smaller than the panel
// plus padding the clamp degenerates gracefully rather than erroring.
func Place(anchor, avatar geometry.Point, size geometry.Size, viewport geometry.Size, offset, padding float64) (geometry.Rect, Quadrant) {
	all := candidates(anchor, size, offset)
	safe := geometry.Rect{W: viewport.W, H: viewport.H}.Shrink(padding)

	fitting := make([]candidate, 0, len(all))
	for _, c := range all {
		if c.rect.Inside(safe) {
			fitting = append(fitting, c)
		}
	}
	if len(fitting) == 0 {
		fitting = all
	}

	best := fitting[0]
	bestDist := geometry.Dist(best.rect.Center(), avatar)
	for _, c := range fitting[1:] {
		if d := geometry.Dist(c.rect.Center(), avatar); d > bestDist {
			best = c
			bestDist = d
		}
	}

	r := best.rect
	r.Left = geometry.Clamp(r.Left, padding, viewport.W-size.W-padding)
	r.Top = geometry.Clamp(r.Top, padding, viewport.H-size.H-padding)
	return r, best.quad
}
