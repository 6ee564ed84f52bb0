// Package gameplay provides core game logic: avatar movement and the
// per-tick orchestration that feeds the interaction machine.
package gameplay

import (
	"math"
	"time"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/engine/input"
	"signalstation/pkg/game/state"
)

// MoveAvatar integrates one tick of movement. Diagonals are normalized so
// the avatar moves at the same speed in every direction, and the position is
// clamped to the world bounds.
func MoveAvatar(g *state.Game, in input.Intent, world geometry.Size, speed float64, dt time.Duration) {
	if !in.Moving() || dt <= 0 {
		return
	}

	dx, dy := in.MoveX, in.MoveY
	if n := math.Hypot(dx, dy); n > 1 {
		dx /= n
		dy /= n
	}

	step := speed * dt.Seconds()
	g.Avatar.X = geometry.Clamp(g.Avatar.X+dx*step, 0, world.W)
	g.Avatar.Y = geometry.Clamp(g.Avatar.Y+dy*step, 0, world.H)

	g.MovementHintDone = true
}
