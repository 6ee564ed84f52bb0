// Package config holds the tunable constants for the interactive resume:
// interaction radii, callout sizing, animation speeds and timing. Defaults
// are compiled in; a YAML overlay file can override individual values for
// tuning without a rebuild.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning is the full set of runtime-tunable values.
type Tuning struct {
	// InteractionRadius is the avatar-to-station distance (world pixels)
	// that auto-opens a station's callout.
	InteractionRadius float64 `yaml:"interaction_radius"`

	// SignalLostRadius is the distance beyond which an open callout starts
	// fading. Must be strictly greater than InteractionRadius.
	SignalLostRadius float64 `yaml:"signal_lost_radius"`

	// SignalLostCloseDelayMs is how long a faded callout lingers before the
	// delayed auto-close fires.
	SignalLostCloseDelayMs int `yaml:"signal_lost_close_delay_ms"`

	// CalloutWidth and CalloutHeight are the fixed callout panel size.
	CalloutWidth  float64 `yaml:"callout_width"`
	CalloutHeight float64 `yaml:"callout_height"`

	// CalloutOffset is how far the callout is pushed diagonally away from
	// its station anchor.
	CalloutOffset float64 `yaml:"callout_offset"`

	// EdgePadding keeps the callout away from the viewport edges.
	EdgePadding float64 `yaml:"edge_padding"`

	// PreviewBullets is how many bullets the transient callout shows; the
	// sidebar readout always shows all of them.
	PreviewBullets int `yaml:"preview_bullets"`

	// LeaderPulseSpeed is the leader-line pulse travel rate in full path
	// traversals per second.
	LeaderPulseSpeed float64 `yaml:"leader_pulse_speed"`

	// RoutePulseSpeed is the decorative route pulse rate, traversals per second.
	RoutePulseSpeed float64 `yaml:"route_pulse_speed"`

	// MoveSpeed is avatar speed in world pixels per second.
	MoveSpeed float64 `yaml:"move_speed"`

	// WorldWidth and WorldHeight bound avatar movement.
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`

	// WindowWidth and WindowHeight are the initial window size.
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// SidebarWidth is the persistent readout panel width.
	SidebarWidth float64 `yaml:"sidebar_width"`

	// MovementHintSeconds is how long the initial movement hint stays up.
	MovementHintSeconds float64 `yaml:"movement_hint_seconds"`
}

// Defaults returns the compiled-in tuning values.
func Defaults() Tuning {
	return Tuning{
		InteractionRadius:      88,
		SignalLostRadius:       180,
		SignalLostCloseDelayMs: 1200,
		CalloutWidth:           220,
		CalloutHeight:          160,
		CalloutOffset:          36,
		EdgePadding:            12,
		PreviewBullets:         3,
		LeaderPulseSpeed:       0.6,
		RoutePulseSpeed:        0.25,
		MoveSpeed:              220,
		WorldWidth:             1600,
		WorldHeight:            1000,
		WindowWidth:            1280,
		WindowHeight:           800,
		SidebarWidth:           300,
		MovementHintSeconds:    6,
	}
}

// SignalLostCloseDelay returns the auto-close delay as a duration.
func (t Tuning) SignalLostCloseDelay() time.Duration {
	return time.Duration(t.SignalLostCloseDelayMs) * time.Millisecond
}

// Validate checks cross-field constraints.
func (t Tuning) Validate() error {
	if t.SignalLostRadius <= t.InteractionRadius {
		return fmt.Errorf("signal_lost_radius (%v) must exceed interaction_radius (%v)",
			t.SignalLostRadius, t.InteractionRadius)
	}
	if t.CalloutWidth <= 0 || t.CalloutHeight <= 0 {
		return fmt.Errorf("callout size must be positive, got %vx%v", t.CalloutWidth, t.CalloutHeight)
	}
	if t.PreviewBullets < 0 {
		return fmt.Errorf("preview_bullets must not be negative, got %d", t.PreviewBullets)
	}
	return nil
}

var current = Defaults()

// Current returns the active tuning values.
func Current() Tuning {
	return current
}

// Set replaces the active tuning values after validating them.
func Set(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	current = t
	return nil
}

// LoadOverlay reads a YAML tuning file and applies it on top of the current
// values. Fields absent from the file keep their existing values.
func LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tuning file: %w", err)
	}

	t := current
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parsing tuning file %s: %w", path, err)
	}
	return Set(t)
}
