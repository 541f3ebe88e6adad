package placeholder

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Render draws l onto a fresh canvas and returns it encoded as PNG.
// Output is deterministic for a given Layout since the fonts are embedded.
func Render(l Layout) ([]byte, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	faceFor := func(line TextLine) font.Face {
		f := regular
		if line.Bold {
			f = bold
		}
		return truetype.NewFace(f, &truetype.Options{Size: line.Size, Hinting: font.HintingNone})
	}

	w, h := float64(l.Width), float64(l.Height)
	dc := gg.NewContext(l.Width, l.Height)

	grad := gg.NewLinearGradient(0, 0, w, h)
	for i, stop := range l.GradientStops {
		offset := 0.0
		if n := len(l.GradientStops); n > 1 {
			offset = float64(i) / float64(n-1)
		}
		grad.AddColorStop(offset, stop)
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetRGBA(1, 1, 1, l.PanelAlpha)
	dc.DrawRectangle(l.PanelX, l.PanelY, l.PanelW, l.PanelH)
	dc.Fill()

	dc.SetRGBA(1, 1, 1, l.BorderAlpha)
	dc.SetLineWidth(l.BorderWidth)
	dc.DrawRectangle(l.PanelX, l.PanelY, l.PanelW, l.PanelH)
	dc.Stroke()

	for _, line := range []TextLine{l.Title, l.Subtitle, l.Instruction} {
		face := faceFor(line)
		dc.SetFontFace(face)
		dc.SetRGBA(1, 1, 1, line.Alpha)
		dc.DrawStringAnchored(line.Text, w/2, line.Y, 0.5, 0.5)
		face.Close()
	}

	dc.SetRGBA(1, 1, 1, l.BadgeAlpha)
	dc.DrawCircle(l.BadgeX, l.BadgeY, l.BadgeRadius)
	dc.Fill()

	glyph := faceFor(TextLine{Size: l.BadgeGlyphSize})
	defer glyph.Close()
	dc.SetFontFace(glyph)
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawStringAnchored(l.BadgeGlyph, l.BadgeX, l.BadgeY, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
