// Package renderer defines the boundary between the interaction core and the
// presentation layer. The core never touches the window directly: it emits
// small command values describing the desired UI change, and a backend
// applies them. This keeps the placement, routing and state machine logic
// independently testable.
package renderer

// Renderer is implemented by presentation backends (the Ebiten window; tests
// use a recording fake).
type Renderer interface {
	// Init prepares the backend (window, fonts). Called once before Run.
	Init() error

	// Apply consumes one tick's worth of UI commands, in order.
	Apply(cmds []Command)

	// Run enters the backend's main loop and blocks until exit.
	Run() error

	// ShowBootError switches the backend into a fatal boot-error screen;
	// the interactive scene never starts.
	ShowBootError(msg string)
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}

// Apply forwards commands to the current renderer.
func Apply(cmds []Command) {
	if Current != nil {
		Current.Apply(cmds)
	}
}
