// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/engine/input"
	"signalstation/pkg/game/config"
	"signalstation/pkg/game/gameplay"
	"signalstation/pkg/game/setup"
	"signalstation/pkg/game/state"
)

// New creates the Ebiten renderer over a built game session.
func New(g *state.Game, log zerolog.Logger) *Renderer {
	cfg := config.Current()
	return &Renderer{
		game:         g,
		log:          log,
		windowWidth:  cfg.WindowWidth,
		windowHeight: cfg.WindowHeight,
		routes:       setup.Routes(),
	}
}

// Init loads fonts and configures the window.
func (r *Renderer) Init() error {
	if err := r.loadFonts(); err != nil {
		return err
	}
	cfg := config.Current()
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(gotext.Get("Signal Station"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run enters the Ebiten main loop and blocks until exit.
func (r *Renderer) Run() error {
	return ebiten.RunGame(r)
}

// ShowBootError switches to the fatal boot-error screen.
func (r *Renderer) ShowBootError(msg string) {
	r.bootErr = msg
}

// Layout reports the logical screen size; the window is resizable.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		r.windowWidth = outsideWidth
		r.windowHeight = outsideHeight
	}
	return r.windowWidth, r.windowHeight
}

// Update runs one logical frame (Ebiten interface): capture input, advance
// the game core, apply the resulting UI commands.
func (r *Renderer) Update() error {
	if !r.windowOpenedLogged {
		r.windowOpenedLogged = true
		r.log.Info().Int("width", r.windowWidth).Int("height", r.windowHeight).
			Msg("window opened")
	}

	now := time.Now()
	var dt time.Duration
	if !r.lastTick.IsZero() {
		dt = now.Sub(r.lastTick)
	}
	// A dragged window or debugger pause can produce a huge gap; cap it so
	// one tick never teleports the avatar.
	if dt > 100*time.Millisecond {
		dt = 100 * time.Millisecond
	}
	r.lastTick = now
	r.elapsed += dt.Seconds()

	if r.bootErr != "" {
		if keyJustPressedAny(ebiten.KeyEscape, ebiten.KeyQ) {
			return ebiten.Termination
		}
		return nil
	}

	intent := r.readIntent()
	if intent.Action == input.ActionQuit {
		return ebiten.Termination
	}

	cmds := gameplay.Tick(r.game, intent, r.view(), now, dt)
	r.Apply(cmds)
	return nil
}

// sceneSize is the map area: the window minus the sidebar. A window too
// narrow for the sidebar gives the whole width to the scene.
func (r *Renderer) sceneSize() geometry.Size {
	cfg := config.Current()
	w := float64(r.windowWidth) - cfg.SidebarWidth
	if w < cfg.SidebarWidth {
		w = float64(r.windowWidth)
	}
	return geometry.Size{W: w, H: float64(r.windowHeight)}
}

// cameraTopLeft follows the avatar, clamped to the world edges; a world
// smaller than the viewport is centered.
func (r *Renderer) cameraTopLeft() geometry.Point {
	cfg := config.Current()
	vp := r.sceneSize()
	return geometry.Point{
		X: cameraAxis(r.game.Avatar.X, vp.W, cfg.WorldWidth),
		Y: cameraAxis(r.game.Avatar.Y, vp.H, cfg.WorldHeight),
	}
}

func cameraAxis(avatar, viewport, world float64) float64 {
	if world <= viewport {
		return (world - viewport) / 2
	}
	return geometry.Clamp(avatar-viewport/2, 0, world-viewport)
}

// view builds the per-tick scene description handed to the game core.
func (r *Renderer) view() gameplay.View {
	cam := r.cameraTopLeft()
	return gameplay.View{
		Viewport: r.sceneSize(),
		ToScreen: func(p geometry.Point) geometry.Point {
			return geometry.Point{X: p.X - cam.X, Y: p.Y - cam.Y}
		},
	}
}
