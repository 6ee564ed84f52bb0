// Package interaction owns the per-tick state of the station callout: which
// station is open, whether its signal is lost, and when a delayed auto-close
// fires. It drives the placement engine and leader-line router and emits
// renderer commands; it never touches the presentation layer directly.
package interaction

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"signalstation/pkg/engine/geometry"
	"signalstation/pkg/game/callout"
	"signalstation/pkg/game/config"
	"signalstation/pkg/game/content"
	"signalstation/pkg/game/renderer"
	"signalstation/pkg/game/station"
)

// State is the machine's observable state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateOpenSignalLost
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateOpenSignalLost:
		return "open-signal-lost"
	}
	return "unknown"
}

// TickInput is everything the machine needs for one frame. The scene
// supplies the avatar position and the world-to-screen transform; the clock
// is injected so transitions stay deterministic under test.
type TickInput struct {
	AvatarWorld  geometry.Point
	AvatarScreen geometry.Point
	Stations     []*station.Station
	ToScreen     func(geometry.Point) geometry.Point
	Viewport     geometry.Size
	Now          time.Time
	Elapsed      time.Duration
}

// pendingClose is the one deferred action in the core: a scheduled auto-close
// keyed by station id. Keying by id means a station switch can never be
// closed by a stale deadline from the previous station.
type pendingClose struct {
	stationID string
	deadline  time.Time
}

// Machine is the interaction state machine. Single-writer: all mutation
// happens inside Tick and RequestClose on the game loop's goroutine.
type Machine struct {
	cfg   config.Tuning
	store *content.Store
	log   zerolog.Logger

	open             *station.Station
	signalLost       bool
	lastAutoOpenedID string
	pulsePhase       float64
	pending          *pendingClose

	inProximity bool
	glowID      string
}

// New creates a machine over a fully loaded content store.
func New(cfg config.Tuning, store *content.Store, log zerolog.Logger) *Machine {
	return &Machine{cfg: cfg, store: store, log: log}
}

// State reports the current state.
func (m *Machine) State() State {
	switch {
	case m.open == nil:
		return StateClosed
	case m.signalLost:
		return StateOpenSignalLost
	default:
		return StateOpen
	}
}

// OpenID returns the open station's id, or "" when closed.
func (m *Machine) OpenID() string {
	if m.open == nil {
		return ""
	}
	return m.open.ID
}

// PulsePhase returns the leader pulse phase in [0,1).
func (m *Machine) PulsePhase() float64 {
	return m.pulsePhase
}

// Tick advances the machine one frame and returns the UI commands for it.
func (m *Machine) Tick(in TickInput) []renderer.Command {
	var cmds []renderer.Command

	if m.open != nil && in.Elapsed > 0 {
		m.pulsePhase += m.cfg.LeaderPulseSpeed * in.Elapsed.Seconds()
		m.pulsePhase -= math.Floor(m.pulsePhase)
	}

	near := station.Nearest(in.AvatarWorld, in.Stations, m.cfg.InteractionRadius)

	glowID := ""
	if near != nil {
		glowID = near.ID
	}
	if glowID != m.glowID {
		m.glowID = glowID
		cmds = append(cmds, renderer.SetGlow{StationID: glowID})
	}

	if near == nil {
		// Leaving proximity re-arms the auto-open guard, exactly once per
		// leave edge. Staying out of range does nothing further.
		if m.inProximity {
			m.inProximity = false
			m.lastAutoOpenedID = ""
		}
	} else {
		m.inProximity = true
		if near.ID != m.lastAutoOpenedID && (m.open == nil || near.ID != m.open.ID) {
			cmds = append(cmds, m.autoOpen(near)...)
		}
	}

	if m.open != nil {
		cmds = append(cmds, m.updateSignal(in)...)
	}
	if m.open != nil {
		cmds = append(cmds, m.reproject(in)...)
	}

	return cmds
}

// RequestClose handles the explicit close (cancel key, close control, click
// outside the panel). Clearing the auto-open guard lets the same station
// reopen immediately on the next tick inside its radius.
func (m *Machine) RequestClose() []renderer.Command {
	if m.open == nil {
		return nil
	}
	m.lastAutoOpenedID = ""
	return m.close()
}

// autoOpen fires on a proximity edge for a station the guard allows. A
// station id with no matching section is a diagnostic no-op; the guard still
// records it so the log line fires once per visit, not once per tick.
func (m *Machine) autoOpen(s *station.Station) []renderer.Command {
	m.lastAutoOpenedID = s.ID

	sec, ok := m.store.Lookup(s.ID)
	if !ok {
		m.log.Warn().Str("station", s.ID).Msg("station has no matching section, ignoring interaction")
		return nil
	}

	// A switch from another open station lands here directly, with no
	// intermediate closed state; any pending close for the old id dies.
	m.open = s
	m.signalLost = false
	m.pending = nil
	m.pulsePhase = 0

	preview := sec.Bullets
	more := 0
	if n := m.cfg.PreviewBullets; len(preview) > n {
		more = len(preview) - n
		preview = preview[:n]
	}

	return []renderer.Command{
		renderer.ShowCallout{
			StationID: s.ID,
			Title:     sec.Title,
			Bullets:   preview,
			More:      more,
			Link:      sec.Link,
			Color:     s.Color,
		},
		renderer.SetReadout{Section: sec},
		renderer.SetIndexHighlight{StationID: s.ID},
		renderer.SetSignalLost{Lost: false},
	}
}

// updateSignal tracks the signal-lost threshold and the delayed auto-close.
func (m *Machine) updateSignal(in TickInput) []renderer.Command {
	var cmds []renderer.Command

	d := geometry.Dist(in.AvatarWorld, m.open.Anchor)
	switch {
	case !m.signalLost && d > m.cfg.SignalLostRadius:
		m.signalLost = true
		m.pending = &pendingClose{
			stationID: m.open.ID,
			deadline:  in.Now.Add(m.cfg.SignalLostCloseDelay()),
		}
		cmds = append(cmds, renderer.SetSignalLost{Lost: true})
	case m.signalLost && d <= m.cfg.SignalLostRadius:
		// Recovered before the deadline; the pending close is canceled.
		m.signalLost = false
		m.pending = nil
		cmds = append(cmds, renderer.SetSignalLost{Lost: false})
	}

	if m.pending != nil && m.pending.stationID == m.open.ID && !in.Now.Before(m.pending.deadline) {
		cmds = append(cmds, m.close()...)
	}
	return cmds
}

// reproject recomputes the callout rectangle and leader line for this frame.
func (m *Machine) reproject(in TickInput) []renderer.Command {
	anchor := in.ToScreen(m.open.Anchor)
	size := geometry.Size{W: m.cfg.CalloutWidth, H: m.cfg.CalloutHeight}
	rect, quad := callout.Place(anchor, in.AvatarScreen, size, in.Viewport,
		m.cfg.CalloutOffset, m.cfg.EdgePadding)
	return []renderer.Command{
		renderer.SetCalloutRect{Rect: rect, Quadrant: quad},
		renderer.SetLeaderPath{Path: callout.Route(anchor, rect, m.pulsePhase)},
	}
}

func (m *Machine) close() []renderer.Command {
	m.open = nil
	m.signalLost = false
	m.pending = nil
	return []renderer.Command{
		renderer.HideCallout{},
		renderer.SetSignalLost{Lost: false},
		renderer.SetIndexHighlight{StationID: ""},
	}
}
