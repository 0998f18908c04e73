package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(0, 1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ccccff")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#b4c8ff"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	StatusRecord  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")).Blink(true)

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ccccff"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

const (
	// GlowThreshold is the |net| a cell needs before it glows.
	GlowThreshold = 2.0
	GlowScale     = 10.0
	GlowMax       = 0.4
)

func parse(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return col
}

// Fade blends c over bg with the given alpha.
func Fade(c, bg lipgloss.Color, alpha float64) string {
	alpha = math.Max(0, math.Min(1, alpha))
	return parse(bg).BlendRgb(parse(c), alpha).Clamped().Hex()
}

// GlowColor is the background tint for a cell holding net charge, or ""
// when the cell is below the glow threshold.
func GlowColor(net float64, th Theme) string {
	abs := math.Abs(net)
	if abs <= GlowThreshold {
		return ""
	}
	hue := th.PositiveHue
	if net < 0 {
		hue = th.NegativeHue
	}
	intensity := math.Min(abs/GlowScale, GlowMax)
	glow := colorful.Hsv(hue, th.GlowSaturation, 1)
	return parse(th.Background).BlendRgb(glow, intensity).Clamped().Hex()
}

// GradientText colors each rune along a Luv blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, b := parse(start), parse(end)

	var out strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := lipgloss.Color(a.BlendLuv(b, t).Clamped().Hex())
		out.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
	}
	return out.String()
}

// SparklineChart renders a mini sparkline from the most recent width values.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var out strings.Builder
	for _, v := range values {
		norm := (v - lo) / span
		c := string(chars[int(norm*float64(len(chars)-1))])
		switch {
		case norm > 0.7:
			out.WriteString(SparkHigh.Render(c))
		case norm > 0.3:
			out.WriteString(SparkMid.Render(c))
		default:
			out.WriteString(SparkLow.Render(c))
		}
	}
	return out.String()
}
