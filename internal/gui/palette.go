package gui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/stellar/internal/viz"
)

// HUD colors
var (
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColPanel   = rl.NewColor(0, 0, 0, 160)
)

// Palette is a theme converted to raylib colors.
type Palette struct {
	Name       string
	Positive   rl.Color
	Negative   rl.Color
	Anti       rl.Color
	Attract    rl.Color
	Repel      rl.Color
	Annihilate rl.Color
	Bolt       rl.Color
	BoltGlow   rl.Color
	Flash      rl.Color
	Background rl.Color

	theme viz.Theme
}

func toColor(c lipgloss.Color) rl.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return ColSelect
	}
	r, g, b := col.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

func NewPalette(th viz.Theme) Palette {
	return Palette{
		Name:       th.Name,
		Positive:   toColor(th.Positive),
		Negative:   toColor(th.Negative),
		Anti:       toColor(th.Anti),
		Attract:    toColor(th.Attract),
		Repel:      toColor(th.Repel),
		Annihilate: toColor(th.Annihilate),
		Bolt:       toColor(th.Bolt),
		BoltGlow:   toColor(th.BoltGlow),
		Flash:      toColor(th.Flash),
		Background: toColor(th.Background),
		theme:      th,
	}
}

// withAlpha scales the color's opacity by a in [0,1].
func withAlpha(c rl.Color, a float64) rl.Color {
	a = math.Max(0, math.Min(1, a))
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}

// Glow is the inner color for a cell holding net charge. ok is false
// below the glow threshold.
func (p Palette) Glow(net float64) (rl.Color, bool) {
	abs := math.Abs(net)
	if abs <= viz.GlowThreshold {
		return rl.Color{}, false
	}
	hue := p.theme.PositiveHue
	if net < 0 {
		hue = p.theme.NegativeHue
	}
	r, g, b := colorful.Hsv(hue, p.theme.GlowSaturation, 1).Clamped().RGB255()
	return withAlpha(rl.NewColor(r, g, b, 255), math.Min(abs/viz.GlowScale, viz.GlowMax)), true
}
