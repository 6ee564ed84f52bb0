// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/engine/input"
)

// readIntent samples the keyboard, mouse and any connected gamepad into a
// single movement/action intent for this frame.
func (r *Renderer) readIntent() input.Intent {
	var in input.Intent

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if in.MoveX == 0 && in.MoveY == 0 {
		in.MoveX, in.MoveY = readGamepadAxes()
	}

	if keyJustPressedAny(ebiten.KeyQ, ebiten.KeyBackspace) {
		in.Action = input.ActionQuit
		return in
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Action = input.ActionClose
		return in
	}
	// A click outside the open panel dismisses it; clicks inside are
	// reserved for the link row.
	if r.callout.visible && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !r.callout.rect.Contains(geometry.Point{X: float64(x), Y: float64(y)}) {
			in.Action = input.ActionClose
		}
	}
	return in
}

// readGamepadAxes reads the left analog stick of the first connected
// gamepad. Axes 0/1 are X/Y on common XInput-style controllers.
func readGamepadAxes() (float64, float64) {
	const deadZone = 0.25

	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])
	for _, id := range ids {
		x := ebiten.GamepadAxisValue(id, 0)
		y := ebiten.GamepadAxisValue(id, 1)
		if x > -deadZone && x < deadZone {
			x = 0
		}
		if y > -deadZone && y < deadZone {
			y = 0
		}
		if x != 0 || y != 0 {
			return x, y
		}
	}
	return 0, 0
}

func keyJustPressedAny(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
