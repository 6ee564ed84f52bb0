package gameplay

import (
	"time"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/engine/input"
	"signalstation/pkg/game/config"
	"signalstation/pkg/game/interaction"
	"signalstation/pkg/game/renderer"
	"signalstation/pkg/game/state"
)

// View is what the scene supplies each tick: the drawable area reserved for
// the map (excluding the sidebar) and the camera's world-to-screen transform.
type View struct {
	Viewport geometry.Size
	ToScreen func(geometry.Point) geometry.Point
}

// Tick runs one logical frame: movement integration, explicit close
// handling, then the interaction machine. It returns the UI commands for the
// presentation layer to apply, in order.
func Tick(g *state.Game, in input.Intent, view View, now time.Time, dt time.Duration) []renderer.Command {
	cfg := config.Current()

	MoveAvatar(g, in, geometry.Size{W: cfg.WorldWidth, H: cfg.WorldHeight}, cfg.MoveSpeed, dt)

	var cmds []renderer.Command
	if in.Action == input.ActionClose {
		cmds = append(cmds, g.Machine.RequestClose()...)
	}

	cmds = append(cmds, g.Machine.Tick(interaction.TickInput{
		AvatarWorld:  g.Avatar,
		AvatarScreen: view.ToScreen(g.Avatar),
		Stations:     g.Stations,
		ToScreen:     view.ToScreen,
		Viewport:     view.Viewport,
		Now:          now,
		Elapsed:      dt,
	})...)

	if id := g.Machine.OpenID(); id != "" {
		g.MarkVisited(id)
	}

	return cmds
}
