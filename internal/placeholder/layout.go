package placeholder

import "image/color"

const (
	Width    = 1200
	Height   = 630
	FileName = "placeholder.png"
)

// TextLine is a single centred string drawn on the panel.
type TextLine struct {
	Text  string
	Size  float64
	Bold  bool
	Alpha float64
	Y     float64
}

// Layout holds every constant that goes into the rendered image. Render
// treats it as read-only.
type Layout struct {
	Width, Height int

	GradientStops []color.RGBA

	PanelX, PanelY, PanelW, PanelH float64
	PanelAlpha                     float64
	BorderAlpha                    float64
	BorderWidth                    float64

	Title       TextLine
	Subtitle    TextLine
	Instruction TextLine

	BadgeX, BadgeY, BadgeRadius float64
	BadgeAlpha                  float64
	BadgeGlyph                  string
	BadgeGlyphSize              float64
}

func DefaultLayout() Layout {
	return Layout{
		Width:  Width,
		Height: Height,
		GradientStops: []color.RGBA{
			{R: 96, G: 165, B: 250, A: 255},
			{R: 37, G: 99, B: 235, A: 255},
			{R: 30, G: 58, B: 138, A: 255},
		},
		PanelX:      100,
		PanelY:      100,
		PanelW:      1000,
		PanelH:      430,
		PanelAlpha:  0.1,
		BorderAlpha: 0.2,
		BorderWidth: 2,
		Title: TextLine{
			Text:  "Your Video Will Appear Here",
			Size:  48,
			Bold:  true,
			Alpha: 1,
			Y:     280,
		},
		Subtitle: TextLine{
			Text:  "Results are rendered live as votes come in",
			Size:  24,
			Alpha: 0.8,
			Y:     340,
		},
		Instruction: TextLine{
			Text:  "Create a poll to start streaming",
			Size:  18,
			Alpha: 0.7,
			Y:     390,
		},
		BadgeX:         600,
		BadgeY:         190,
		BadgeRadius:    30,
		BadgeAlpha:     0.3,
		BadgeGlyph:     "►",
		BadgeGlyphSize: 24,
	}
}
