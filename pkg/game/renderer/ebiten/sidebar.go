// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"signalstation/pkg/engine/geometry"
)

// drawSidebar renders the persistent readout: the section index with visited
// marks, then the full text of the section the avatar last reached.
func (r *Renderer) drawSidebar(screen *ebiten.Image, scene geometry.Size) {
	x := scene.W
	w := float64(r.windowWidth) - x
	if w <= 0 {
		return
	}

	vector.DrawFilledRect(screen,
		float32(x), 0, float32(w), float32(r.windowHeight),
		colorSidebarBg, false)
	vector.StrokeLine(screen,
		float32(x), 0, float32(x), float32(r.windowHeight),
		1, colorSidebarRule, false)

	bodyFace := r.getSansFontFace()
	boldFace := r.getSansBoldFontFace()
	titleFace := r.getTitleFontFace()
	monoFace := r.getMonoFontFace()

	textX := x + sidebarPadding
	textMaxW := w - 2*sidebarPadding
	y := float64(sidebarPadding)

	title := gotext.Get("SIGNAL STATION")
	drawTextWithFace(screen, title, textX, y, colorText, titleFace)
	y += titleFontSize + 18

	// Index list. The entry for the open station is highlighted; visited
	// sections carry a tick.
	lineH := baseUIFontSize + 8.0
	for _, sec := range r.game.Content.Sections() {
		if sec.ID == r.readout.highlightID {
			vector.DrawFilledRect(screen,
				float32(x+6), float32(y-3),
				float32(w-12), float32(lineH),
				colorSidebarRule, false)
		}

		mark := "·"
		markColor := colorSubtle
		if r.game.HasVisited(sec.ID) {
			mark = "✓"
			markColor = colorIndexVisited
		}
		drawTextWithFace(screen, mark, textX, y, markColor, monoFace)

		entryColor := colorSubtle
		entryFace := bodyFace
		if sec.ID == r.readout.highlightID {
			entryColor = colorText
			entryFace = boldFace
		}
		drawTextWithFace(screen, truncateText(sec.Title, entryFace, textMaxW-20),
			textX+20, y, entryColor, entryFace)
		y += lineH
	}

	y += 8
	vector.StrokeLine(screen,
		float32(textX), float32(y), float32(x+w-sidebarPadding), float32(y),
		1, colorSidebarRule, false)
	y += 16

	if !r.readout.hasSection {
		for _, line := range wrapText(gotext.Get("Walk up to a station to read a section here."), bodyFace, textMaxW) {
			drawTextWithFace(screen, line, textX, y, colorSubtle, bodyFace)
			y += baseUIFontSize + 5
		}
		return
	}

	sec := r.readout.section
	drawTextWithFace(screen, strings.ToUpper(sec.Title), textX, y, colorText, boldFace)
	y += baseUIFontSize + 12

	bodyLineH := baseUIFontSize + 5.0
	for _, bullet := range sec.Bullets {
		if y+bodyLineH > float64(r.windowHeight)-sidebarPadding {
			return
		}
		for i, line := range wrapText(bullet, bodyFace, textMaxW-12) {
			if i == 0 {
				drawTextWithFace(screen, "•", textX, y, colorSubtle, bodyFace)
			}
			drawTextWithFace(screen, line, textX+12, y, colorText, bodyFace)
			y += bodyLineH
		}
		y += 3
	}

	if sec.Link != nil && y+bodyLineH <= float64(r.windowHeight)-sidebarPadding {
		y += 6
		label := truncateText("→ "+sec.Link.Label, bodyFace, textMaxW)
		drawTextWithFace(screen, label, textX, y, colorLink, bodyFace)
		y += bodyLineH
		drawTextWithFace(screen, truncateText(sec.Link.URL, monoFace, textMaxW), textX, y, colorSubtle, monoFace)
	}
}
