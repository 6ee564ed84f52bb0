package callout

import (
	"testing"

	"signalstation/pkg/engine/geometry"
)

var (
	testSize     = geometry.Size{W: 220, H: 160}
	testViewport = geometry.Size{W: 1280, H: 800}
)

const (
	testOffset  = 36.0
	testPadding = 12.0
)

func TestPlace_Idempotent(t *testing.T) {
	anchor := geometry.Point{X: 600, Y: 300}
	avatar := geometry.Point{X: 580, Y: 340}
	r1, q1 := Place(anchor, avatar, testSize, testViewport, testOffset, testPadding)
	r2, q2 := Place(anchor, avatar, testSize, testViewport, testOffset, testPadding)
	if r1 != r2 || q1 != q2 {
		t.Errorf("Place not idempotent: (%+v,%v) then (%+v,%v)", r1, q1, r2, q2)
	}
}

func TestPlace_AlwaysInsidePaddedViewport(t *testing.T) {
	// For every anchor/avatar combination the result must satisfy the
	// padding invariant whenever viewport >= size + 2*padding.
	anchors := []geometry.Point{
		{X: 0, Y: 0}, {X: 1280, Y: 800}, {X: 640, Y: 400},
		{X: 10, Y: 790}, {X: 1275, Y: 5}, {X: -50, Y: 400},
	}
	avatars := []geometry.Point{
		{X: 0, Y: 0}, {X: 640, Y: 400}, {X: 1280, Y: 0},
	}
	for _, anchor := range anchors {
		for _, avatar := range avatars {
			r, _ := Place(anchor, avatar, testSize, testViewport, testOffset, testPadding)
			if r.Left < testPadding || r.Left+r.W > testViewport.W-testPadding {
				t.Errorf("anchor %v avatar %v: left %v outside [%v,%v]",
					anchor, avatar, r.Left, testPadding, testViewport.W-testSize.W-testPadding)
			}
			if r.Top < testPadding || r.Top+r.H > testViewport.H-testPadding {
				t.Errorf("anchor %v avatar %v: top %v outside [%v,%v]",
					anchor, avatar, r.Top, testPadding, testViewport.H-testSize.H-testPadding)
			}
		}
	}
}

func TestPlace_FarthestFromAvatarWins(t *testing.T) {
	// Anchor mid-viewport so all four candidates fit. Avatar below-left of
	// the anchor pushes the panel to the opposite diagonal.
	anchor := geometry.Point{X: 640, Y: 400}
	avatar := geometry.Point{X: 600, Y: 440}
	r, q := Place(anchor, avatar, testSize, testViewport, testOffset, testPadding)
	if q != TopRight {
		t.Errorf("quadrant = %v, want top-right (farthest from below-left avatar)", q)
	}
	// No other fitting candidate may be farther from the avatar.
	chosen := geometry.Dist(r.Center(), avatar)
	for _, c := range candidates(anchor, testSize, testOffset) {
		if c.rect.Inside((geometry.Rect{W: testViewport.W, H: testViewport.H}).Shrink(testPadding)) {
			if d := geometry.Dist(c.rect.Center(), avatar); d > chosen+1e-9 {
				t.Errorf("candidate %v at distance %v beats chosen distance %v", c.quad, d, chosen)
			}
		}
	}
}

func TestPlace_TieKeepsEnumerationOrder(t *testing.T) {
	// Avatar exactly on the anchor is equidistant from all four candidate
	// centers; the first-enumerated quadrant (top-right) must win.
	anchor := geometry.Point{X: 640, Y: 400}
	_, q := Place(anchor, anchor, testSize, testViewport, testOffset, testPadding)
	if q != TopRight {
		t.Errorf("quadrant on tie = %v, want top-right", q)
	}
}

func TestPlace_CornerStationFallbackAndClamp(t *testing.T) {
	// Scenario: viewport 400x300, callout 220x160, offset 36, padding 12,
	// station at (10,10). No raw candidate fits; fallback selects among all
	// four by avatar distance, then the clamp forces the origin into
	// [12,168]x[12,128].
	viewport := geometry.Size{W: 400, H: 300}
	anchor := geometry.Point{X: 10, Y: 10}
	avatar := geometry.Point{X: 200, Y: 150}

	safe := (geometry.Rect{W: viewport.W, H: viewport.H}).Shrink(testPadding)
	for _, c := range candidates(anchor, testSize, testOffset) {
		if c.rect.Inside(safe) {
			t.Fatalf("candidate %v unexpectedly fits; scenario requires total fallback", c.quad)
		}
	}

	r, _ := Place(anchor, avatar, testSize, viewport, testOffset, testPadding)
	if r.Left < 12 || r.Left > 168 {
		t.Errorf("clamped left = %v, want within [12,168]", r.Left)
	}
	if r.Top < 12 || r.Top > 128 {
		t.Errorf("clamped top = %v, want within [12,128]", r.Top)
	}
}

func TestPlace_DegenerateViewportDoesNotPanic(t *testing.T) {
	// Viewport smaller than the callout: clamp degenerates (lower bound
	// wins) but must still produce a rectangle.
	viewport := geometry.Size{W: 100, H: 80}
	r, _ := Place(geometry.Point{X: 50, Y: 40}, geometry.Point{}, testSize, viewport, testOffset, testPadding)
	if r.Left != testPadding || r.Top != testPadding {
		t.Errorf("degenerate viewport origin = (%v,%v), want (%v,%v)", r.Left, r.Top, testPadding, testPadding)
	}
}

func TestQuadrant_String(t *testing.T) {
	if TopRight.String() != "top-right" || BottomLeft.String() != "bottom-left" {
		t.Errorf("Quadrant.String() = %q/%q, want top-right/bottom-left",
			TopRight.String(), BottomLeft.String())
	}
}
