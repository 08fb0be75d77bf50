package knot

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is a TrueType face for drawing overlay text through Ebitengine's
// text/v2 package.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont parses TrueType or OpenType data and returns a face of the given
// pixel size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("knot: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of s when drawn with f.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Draw draws s with its top-left corner at (x, y).
func (f *Font) Draw(dst *ebiten.Image, s string, x, y float64, clr Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(clr.premultiplied())
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}
