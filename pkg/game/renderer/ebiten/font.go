// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go typefaces into text/v2 sources.
func (r *Renderer) loadFonts() error {
	var err error
	if r.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("loading sans font: %w", err)
	}
	if r.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("loading bold font: %w", err)
	}
	if r.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("loading mono font: %w", err)
	}
	return nil
}

// getSansFontFace returns the cached UI face.
func (r *Renderer) getSansFontFace() *text.GoTextFace {
	if r.cachedSansFace == nil {
		r.cachedSansFace = &text.GoTextFace{Source: r.sansFontSource, Size: baseUIFontSize}
	}
	return r.cachedSansFace
}

// getSansBoldFontFace returns the cached bold face at UI size.
func (r *Renderer) getSansBoldFontFace() *text.GoTextFace {
	if r.cachedSansBoldFace == nil {
		r.cachedSansBoldFace = &text.GoTextFace{Source: r.sansBoldFontSource, Size: baseUIFontSize}
	}
	return r.cachedSansBoldFace
}

// getTitleFontFace returns the cached bold face for panel titles.
func (r *Renderer) getTitleFontFace() *text.GoTextFace {
	if r.cachedTitleFace == nil {
		r.cachedTitleFace = &text.GoTextFace{Source: r.sansBoldFontSource, Size: titleFontSize}
	}
	return r.cachedTitleFace
}

// getMonoFontFace returns the cached monospace face (station labels).
func (r *Renderer) getMonoFontFace() *text.GoTextFace {
	if r.cachedMonoFace == nil {
		r.cachedMonoFace = &text.GoTextFace{Source: r.monoFontSource, Size: baseUIFontSize}
	}
	return r.cachedMonoFace
}
