// Package input defines the intent abstraction between raw key capture and
// game logic. The renderer backend translates device state into one Intent
// per tick; game code never sees key codes.
package input

// Action is a discrete, edge-triggered request.
type Action int

const (
	ActionNone Action = iota

	// ActionClose dismisses the open callout (Escape, or a click outside
	// the panel).
	ActionClose

	// ActionQuit exits the application.
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionClose:
		return "close"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// Intent is one tick's worth of player input. MoveX/MoveY are held-key axes
// in [-1,1] before normalization (WASD and arrows); Action carries at most
// one discrete request.
type Intent struct {
	MoveX  float64
	MoveY  float64
	Action Action
}

// Moving reports whether any movement axis is engaged.
func (i Intent) Moving() bool {
	return i.MoveX != 0 || i.MoveY != 0
}
