package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette for particles, links and effects.
type Theme struct {
	Name       string
	Positive   lipgloss.Color
	Negative   lipgloss.Color
	Anti       lipgloss.Color
	Attract    lipgloss.Color
	Repel      lipgloss.Color
	Annihilate lipgloss.Color
	Bolt       lipgloss.Color
	BoltGlow   lipgloss.Color
	Flash      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color

	// charge glow, hues in degrees
	PositiveHue    float64
	NegativeHue    float64
	GlowSaturation float64
}

var (
	ThemePeriwinkle = Theme{
		Name:           "periwinkle",
		Positive:       lipgloss.Color("#ccccff"),
		Negative:       lipgloss.Color("#8888cc"),
		Anti:           lipgloss.Color("#ff88ff"),
		Attract:        lipgloss.Color("#b4b4ff"),
		Repel:          lipgloss.Color("#ffb4b4"),
		Annihilate:     lipgloss.Color("#ff64ff"),
		Bolt:           lipgloss.Color("#ffffff"),
		BoltGlow:       lipgloss.Color("#b4c8ff"),
		Flash:          lipgloss.Color("#ff64ff"),
		PositiveHue:    0,
		NegativeHue:    240,
		GlowSaturation: 0.25,
		Background:     lipgloss.Color("#0a0a12"),
		Text:           lipgloss.Color("#e0e0ff"),
		Muted:          lipgloss.Color("#666688"),
	}

	ThemeEmber = Theme{
		Name:           "ember",
		Positive:       lipgloss.Color("#ffcc66"),
		Negative:       lipgloss.Color("#cc6633"),
		Anti:           lipgloss.Color("#66ffcc"),
		Attract:        lipgloss.Color("#ffaa55"),
		Repel:          lipgloss.Color("#aa5533"),
		Annihilate:     lipgloss.Color("#66ffcc"),
		Bolt:           lipgloss.Color("#fff5cc"),
		BoltGlow:       lipgloss.Color("#ffcc88"),
		Flash:          lipgloss.Color("#66ffcc"),
		PositiveHue:    40,
		NegativeHue:    10,
		GlowSaturation: 0.7,
		Background:     lipgloss.Color("#120a06"),
		Text:           lipgloss.Color("#fff0e0"),
		Muted:          lipgloss.Color("#886655"),
	}

	ThemeMono = Theme{
		Name:           "mono",
		Positive:       lipgloss.Color("#ffffff"),
		Negative:       lipgloss.Color("#aaaaaa"),
		Anti:           lipgloss.Color("#ffffff"),
		Attract:        lipgloss.Color("#888888"),
		Repel:          lipgloss.Color("#555555"),
		Annihilate:     lipgloss.Color("#cccccc"),
		Bolt:           lipgloss.Color("#ffffff"),
		BoltGlow:       lipgloss.Color("#dddddd"),
		Flash:          lipgloss.Color("#ffffff"),
		PositiveHue:    0,
		NegativeHue:    0,
		GlowSaturation: 0,
		Background:     lipgloss.Color("#000000"),
		Text:           lipgloss.Color("#ffffff"),
		Muted:          lipgloss.Color("#777777"),
	}

	Themes = []Theme{
		ThemePeriwinkle,
		ThemeEmber,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to periwinkle.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePeriwinkle
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
