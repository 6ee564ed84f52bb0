// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
)

// calloutAlpha combines the entrance fade-in with the signal-lost fade-down.
func (r *Renderer) calloutAlpha() float32 {
	now := time.Now().UnixMilli()

	alpha := float32(1)
	if age := now - r.callout.shownAt; age < calloutEntranceMs {
		alpha = float32(age) / calloutEntranceMs
	}

	if r.callout.signalLost {
		lossAge := now - r.callout.lostAt
		progress := float32(1)
		if lossAge < signalLostFadeMs {
			progress = float32(lossAge) / signalLostFadeMs
		}
		alpha *= 1 - progress*(1-signalLostAlpha)
	} else if lossAge := now - r.callout.lostAt; r.callout.lostAt > 0 && lossAge < signalLostFadeMs {
		// Signal recovered: fade back up to full.
		recovered := signalLostAlpha + (1-signalLostAlpha)*float32(lossAge)/signalLostFadeMs
		if recovered < alpha {
			alpha = recovered
		}
	}
	return alpha
}

// drawLeader strokes the elbow connector from the station marker to the
// panel border, with the traveling pulse dot on top.
func (r *Renderer) drawLeader(screen *ebiten.Image, alpha float32) {
	pts := r.callout.path.Points
	if len(pts) < 2 {
		return
	}

	lineColor := applyAlpha(colorLeader, alpha)
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y),
			leaderWidth, lineColor, true)
	}

	pulse := r.callout.path.Pulse
	vector.DrawFilledCircle(screen,
		float32(pulse.X), float32(pulse.Y),
		leaderPulseRadius, applyAlpha(colorLeaderPulse, alpha), true)
}

// drawCallout renders the transient panel at its placed rect.
func (r *Renderer) drawCallout(screen *ebiten.Image) {
	alpha := r.calloutAlpha()
	if alpha < 0.01 {
		return
	}

	r.drawLeader(screen, alpha)

	rect := r.callout.rect
	x := float32(rect.Left)
	y := float32(rect.Top)

	borderColor := r.callout.accent
	if r.callout.signalLost {
		borderColor = colorSignalLost
	}
	drawRoundedPanel(screen, x, y, float32(rect.W), float32(rect.H),
		panelCornerRadius, panelBorderWidth,
		colorPanelBackground, borderColor, alpha)

	bodyFace := r.getSansFontFace()
	titleFace := r.getTitleFontFace()
	textX := rect.Left + panelPadding
	textMaxW := rect.W - 2*panelPadding
	textY := rect.Top + panelPadding

	title := truncateText(r.callout.title, titleFace, textMaxW)
	drawTextWithAlpha(screen, title, textX, textY, r.callout.accent, titleFace, alpha)
	textY += titleFontSize + 8

	lineH := baseUIFontSize + 4.0
	for _, bullet := range r.callout.bullets {
		for i, line := range wrapText(bullet, bodyFace, textMaxW-12) {
			if textY+lineH > rect.Bottom()-panelPadding {
				return
			}
			if i == 0 {
				drawTextWithAlpha(screen, "•", textX, textY, colorSubtle, bodyFace, alpha)
			}
			drawTextWithAlpha(screen, line, textX+12, textY, colorText, bodyFace, alpha)
			textY += lineH
		}
	}

	if r.callout.more > 0 && textY+lineH <= rect.Bottom()-panelPadding {
		drawTextWithAlpha(screen, gotext.Get("+%d more", r.callout.more),
			textX, textY, colorSubtle, bodyFace, alpha)
		textY += lineH
	}

	if r.callout.link != nil && textY+lineH <= rect.Bottom()-panelPadding {
		label := truncateText("→ "+r.callout.link.Label, bodyFace, textMaxW)
		drawTextWithAlpha(screen, label, textX, textY, colorLink, bodyFace, alpha)
	}

	if r.callout.signalLost {
		banner := gotext.Get("SIGNAL LOST")
		bannerFace := r.getSansBoldFontFace()
		bx := rect.Left + (rect.W-textWidth(banner, bannerFace))/2
		drawTextWithFace(screen, banner, bx, rect.Bottom()+6, colorSignalLost, bannerFace)
	}
}
