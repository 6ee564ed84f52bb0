package renderer

import (
	"image/color"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/game/callout"
	"signalstation/pkg/game/content"
)

// Command is one UI update emitted by the interaction machine. Commands are
// plain values; applying the same command twice is harmless.
type Command interface {
	isCommand()
}

// ShowCallout opens (or refreshes) the transient panel for a station. The
// bullet list is the preview subset; More counts the bullets held back.
type ShowCallout struct {
	StationID string
	Title     string
	Bullets   []string
	More      int
	Link      *content.Link
	Color     color.RGBA
}

// HideCallout closes the transient panel.
type HideCallout struct{}

// SetCalloutRect positions the transient panel for this frame.
type SetCalloutRect struct {
	Rect     geometry.Rect
	Quadrant callout.Quadrant
}

// SetLeaderPath sets this frame's leader line and pulse marker.
type SetLeaderPath struct {
	Path callout.Path
}

// SetReadout replaces the persistent sidebar content with a full section.
type SetReadout struct {
	Section content.Section
}

// SetSignalLost toggles the callout's fading "signal lost" presentation.
type SetSignalLost struct {
	Lost bool
}

// SetIndexHighlight marks the active entry in the section index list; an
// empty id clears the highlight.
type SetIndexHighlight struct {
	StationID string
}

// SetGlow marks the station the avatar is nearest to (within interaction
// range) for the halo effect; an empty id clears it.
type SetGlow struct {
	StationID string
}

func (ShowCallout) isCommand()       {}
func (HideCallout) isCommand()       {}
func (SetCalloutRect) isCommand()    {}
func (SetLeaderPath) isCommand()     {}
func (SetReadout) isCommand()        {}
func (SetSignalLost) isCommand()     {}
func (SetIndexHighlight) isCommand() {}
func (SetGlow) isCommand()           {}
