package callout

import (
	"signalstation/pkg/engine/geometry"
)

// Path is an orthogonal leader line from the callout border to the station
// anchor, plus the position of the pulse marker traveling along it.
type Path struct {
	Points []geometry.Point
	Pulse  geometry.Point
}

// Route computes the leader line for one frame. The line leaves the panel
// where the ray from the panel's center toward the anchor crosses its
// border, then elbows orthogonally to the anchor. phase in [0,1) places the
// pulse marker at that fraction of the total path length; the caller owns
// advancing and wrapping the phase.
func Route(anchor geometry.Point, panel geometry.Rect, phase float64) Path {
	exit := geometry.EdgeExit(panel, anchor)
	pts := geometry.ElbowPath(exit, anchor)
	return Path{
		Points: pts,
		Pulse:  geometry.PointAlong(pts, phase),
	}
}
