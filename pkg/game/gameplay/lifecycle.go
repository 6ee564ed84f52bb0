package gameplay

import (
	"github.com/rs/zerolog"

	"signalstation/pkg/game/config"
	"signalstation/pkg/game/content"
	"signalstation/pkg/game/interaction"
	"signalstation/pkg/game/setup"
	"signalstation/pkg/game/state"
)

// BuildGame wires a full session from a loaded content store: the station
// table, the interaction machine and the avatar at its spawn point.
func BuildGame(store *content.Store, log zerolog.Logger) *state.Game {
	stations := setup.Stations()
	m := interaction.New(config.Current(), store, log)
	return state.NewGame(setup.Spawn(), stations, store, m)
}
