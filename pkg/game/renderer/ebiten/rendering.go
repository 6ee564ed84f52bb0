// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/game/config"
)

// Draw renders one frame (Ebiten interface).
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if r.bootErr != "" {
		r.drawBootError(screen)
		return
	}
	if r.game == nil || r.sansFontSource == nil {
		return
	}

	cam := r.cameraTopLeft()
	scene := r.sceneSize()

	vector.DrawFilledRect(screen, 0, 0, float32(scene.W), float32(scene.H), colorMapBackground, false)
	r.drawGrid(screen, cam, scene)
	r.drawRoutes(screen, cam, scene)
	r.drawStations(screen, cam)
	r.drawAvatar(screen, cam)

	if r.callout.visible {
		r.drawCallout(screen)
	}

	r.drawSidebar(screen, scene)
	r.drawMovementHint(screen, scene)
}

func toScreen(p geometry.Point, cam geometry.Point) geometry.Point {
	return geometry.Point{X: p.X - cam.X, Y: p.Y - cam.Y}
}

// drawGrid dots the map background on a fixed world-space lattice so the
// camera's motion is visible even away from stations.
func (r *Renderer) drawGrid(screen *ebiten.Image, cam geometry.Point, scene geometry.Size) {
	startX := math.Floor(cam.X/gridSpacing) * gridSpacing
	startY := math.Floor(cam.Y/gridSpacing) * gridSpacing

	for wx := startX; wx <= cam.X+scene.W; wx += gridSpacing {
		for wy := startY; wy <= cam.Y+scene.H; wy += gridSpacing {
			p := toScreen(geometry.Point{X: wx, Y: wy}, cam)
			if p.X < 0 || p.X > scene.W || p.Y < 0 || p.Y > scene.H {
				continue
			}
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 1.5, colorGridDot, false)
		}
	}
}

// drawRoutes strokes the decorative network lines and their traveling pulses.
func (r *Renderer) drawRoutes(screen *ebiten.Image, cam geometry.Point, scene geometry.Size) {
	cfg := config.Current()

	for _, rt := range r.routes {
		for i := 1; i < len(rt.Points); i++ {
			a := toScreen(rt.Points[i-1], cam)
			b := toScreen(rt.Points[i], cam)
			vector.StrokeLine(screen,
				float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				routeWidth, colorRoute, true)
		}

		phase := math.Mod(r.elapsed*cfg.RoutePulseSpeed+rt.PhaseOffset, 1)
		pulse := toScreen(geometry.PointAlong(rt.Points, phase), cam)
		if pulse.X < 0 || pulse.X > scene.W || pulse.Y < 0 || pulse.Y > scene.H {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(pulse.X), float32(pulse.Y),
			routePulseRadius, colorRoutePulse, true)
	}
}

// drawStations renders each marker in its accent color with a label beneath;
// the nearest in-range station gets a breathing halo.
func (r *Renderer) drawStations(screen *ebiten.Image, cam geometry.Point) {
	monoFace := r.getMonoFontFace()

	for _, st := range r.game.Stations {
		p := toScreen(st.Anchor, cam)
		x := float32(p.X)
		y := float32(p.Y)

		if st.ID == r.glowID {
			breathe := float32(0.75 + 0.25*math.Sin(r.elapsed*4))
			vector.DrawFilledCircle(screen, x, y, stationGlowRadius*breathe,
				colorGlow, true)
		}

		vector.DrawFilledCircle(screen, x, y, stationRadius, st.Color, true)
		vector.DrawFilledCircle(screen, x, y, stationRadius-4, colorStationCore, true)

		label := st.Label
		lx := p.X - textWidth(label, monoFace)/2
		drawTextWithFace(screen, label, lx, p.Y+stationRadius+6, colorSubtle, monoFace)
	}
}

func (r *Renderer) drawAvatar(screen *ebiten.Image, cam geometry.Point) {
	p := toScreen(r.game.Avatar, cam)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), avatarRadius+2, colorAvatarTrim, true)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), avatarRadius, colorAvatar, true)
}

// drawMovementHint shows the controls prompt until the player first moves or
// the hint times out.
func (r *Renderer) drawMovementHint(screen *ebiten.Image, scene geometry.Size) {
	cfg := config.Current()
	if r.game.MovementHintDone || r.elapsed > cfg.MovementHintSeconds {
		return
	}

	hint := gotext.Get("WASD or arrow keys to move · walk up to a station")
	face := r.getSansFontFace()
	w := textWidth(hint, face)
	x := (scene.W - w) / 2
	y := scene.H - 48

	vector.DrawFilledRect(screen,
		float32(x-12), float32(y-8),
		float32(w+24), float32(baseUIFontSize+16),
		colorPanelBackground, false)
	drawTextWithFace(screen, hint, x, y, colorText, face)
}

// drawBootError paints the fatal startup screen: the window stays up so the
// player can read what went wrong.
func (r *Renderer) drawBootError(screen *ebiten.Image) {
	if r.sansFontSource == nil {
		return
	}
	titleFace := r.getTitleFontFace()
	bodyFace := r.getSansFontFace()

	w := float64(r.windowWidth)
	y := float64(r.windowHeight)/2 - 60

	title := gotext.Get("STARTUP FAILED")
	drawTextWithFace(screen, title, (w-textWidth(title, titleFace))/2, y, colorBootError, titleFace)
	y += titleFontSize + 16

	for _, line := range wrapText(r.bootErr, bodyFace, w*0.7) {
		drawTextWithFace(screen, line, (w-textWidth(line, bodyFace))/2, y, colorText, bodyFace)
		y += baseUIFontSize + 6
	}
	y += 16

	hint := gotext.Get("Press Escape to exit")
	drawTextWithFace(screen, hint, (w-textWidth(hint, bodyFace))/2, y, colorSubtle, bodyFace)
}
