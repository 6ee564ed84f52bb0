// Package state holds the explicit game state object. Everything mutable
// lives here or in the interaction machine it owns; nothing reads ambient
// globals.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/game/content"
	"signalstation/pkg/game/interaction"
	"signalstation/pkg/game/station"
)

// Game is the full state for one session of the explorable resume.
type Game struct {
	// Avatar is the player position in world space.
	Avatar geometry.Point

	Stations []*station.Station

	Content *content.Store

	Machine *interaction.Machine

	// Visited tracks station ids whose callout has been opened at least
	// once this session; the section index ticks them off.
	Visited mapset.Set[string]

	// MovementHintDone is set once the avatar has moved, retiring the
	// initial controls hint.
	MovementHintDone bool
}

// NewGame creates a session with the avatar at the given spawn point.
func NewGame(spawn geometry.Point, stations []*station.Station, store *content.Store, m *interaction.Machine) *Game {
	return &Game{
		Avatar:   spawn,
		Stations: stations,
		Content:  store,
		Machine:  m,
		Visited:  mapset.New[string](),
	}
}

// MarkVisited records that a station's callout was opened.
func (g *Game) MarkVisited(id string) {
	g.Visited.Put(id)
}

// HasVisited reports whether a station's callout has been opened this session.
func (g *Game) HasVisited(id string) bool {
	return g.Visited.Has(id)
}
