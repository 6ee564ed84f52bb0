// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"time"

	"signalstation/pkg/game/renderer"
)

// Apply folds one tick's UI commands into the renderer's presentation state.
// It runs on the game loop goroutine, between Update and Draw.
func (r *Renderer) Apply(cmds []renderer.Command) {
	nowMs := time.Now().UnixMilli()

	for _, c := range cmds {
		switch cmd := c.(type) {
		case renderer.ShowCallout:
			// Re-showing the already-open station refreshes content without
			// restarting the entrance animation.
			shownAt := nowMs
			if r.callout.visible && r.callout.stationID == cmd.StationID {
				shownAt = r.callout.shownAt
			}
			r.callout = calloutView{
				visible:   true,
				stationID: cmd.StationID,
				title:     cmd.Title,
				bullets:   cmd.Bullets,
				more:      cmd.More,
				link:      cmd.Link,
				accent:    cmd.Color,
				shownAt:   shownAt,
			}

		case renderer.HideCallout:
			r.callout = calloutView{}

		case renderer.SetCalloutRect:
			r.callout.rect = cmd.Rect
			r.callout.quadrant = cmd.Quadrant

		case renderer.SetLeaderPath:
			r.callout.path = cmd.Path

		case renderer.SetReadout:
			r.readout.hasSection = true
			r.readout.section = cmd.Section

		case renderer.SetSignalLost:
			if r.callout.signalLost != cmd.Lost {
				r.callout.signalLost = cmd.Lost
				r.callout.lostAt = nowMs
			}

		case renderer.SetIndexHighlight:
			r.readout.highlightID = cmd.StationID

		case renderer.SetGlow:
			r.glowID = cmd.StationID
		}
	}
}
