// Package ebiten provides the Ebiten-based graphical presentation for the
// station map. It owns the window, the draw loop and raw input capture, and
// applies the UI commands emitted by the interaction core each tick.
package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"

	"signalstation/pkg/engine/geometry"
	gamecallout "signalstation/pkg/game/callout"
	"signalstation/pkg/game/content"
	"signalstation/pkg/game/setup"
	"signalstation/pkg/game/state"
)

// calloutView is the applied presentation state of the transient panel.
// Mutated only by Apply; read only by Draw. Both run on the game loop
// goroutine, so no locking is needed.
type calloutView struct {
	visible   bool
	stationID string
	title     string
	bullets   []string
	more      int
	link      *content.Link
	accent    color.RGBA

	rect     geometry.Rect
	quadrant gamecallout.Quadrant
	path     gamecallout.Path

	signalLost bool
	// shownAt and lostAt drive the entrance and fade animations (Unix ms).
	shownAt int64
	lostAt  int64
}

// readoutView is the applied presentation state of the persistent sidebar.
type readoutView struct {
	hasSection  bool
	section     content.Section
	highlightID string
}

// Renderer is the Ebiten presentation backend. It implements both
// ebiten.Game (Update/Draw/Layout) and the renderer.Renderer boundary.
type Renderer struct {
	game *state.Game
	log  zerolog.Logger

	// Window dimensions, updated by Layout each frame.
	windowWidth  int
	windowHeight int

	// Font sources and cached faces for UI text.
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource
	monoFontSource     *text.GoTextFaceSource
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace
	cachedTitleFace    *text.GoTextFace
	cachedMonoFace     *text.GoTextFace

	// Applied command state.
	callout calloutView
	readout readoutView
	glowID  string

	// Decorative network lines, fixed at startup.
	routes []setup.Route

	// bootErr, when set, replaces the scene with a fatal error screen.
	bootErr string

	// Tick clock. lastTick is zero until the first update.
	lastTick time.Time

	// elapsed seconds since start, for the decorative route pulses and the
	// movement hint.
	elapsed float64

	windowOpenedLogged bool
}
