// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawTextWithFace draws a string at x,y (top-left origin) in the given color.
// Content strings are drawn verbatim; UI chrome is translated at the call site.
func drawTextWithFace(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawTextWithAlpha is drawTextWithFace with an extra alpha multiplier for the
// callout entrance and signal-lost fades.
func drawTextWithAlpha(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, str, face, op)
}

func textWidth(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}

// wrapText greedily wraps a string into lines no wider than maxWidth. A single
// word wider than the limit gets a line of its own.
func wrapText(str string, face *text.GoTextFace, maxWidth float64) []string {
	words := strings.Fields(str)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if textWidth(candidate, face) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// truncateText shortens a string with an ellipsis to fit maxWidth.
func truncateText(str string, face *text.GoTextFace, maxWidth float64) string {
	if textWidth(str, face) <= maxWidth {
		return str
	}
	runes := []rune(str)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if textWidth(candidate, face) <= maxWidth {
			return candidate
		}
	}
	return "…"
}
