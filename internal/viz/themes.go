package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gfxlab/internal/rubik"
)

// Theme defines the colour scheme of the terminal views and the sticker
// palette of the cube net.
type Theme struct {
	Name     string
	Primary  lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Stickers [7]lipgloss.Color
}

func (t Theme) Sticker(c rubik.Color) lipgloss.Style {
	if int(c) < 0 || int(c) >= len(t.Stickers) {
		c = rubik.Black
	}
	return lipgloss.NewStyle().Foreground(t.Stickers[c])
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#00ffff"),
		Accent:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		// black, red, green, blue, yellow, orange, white
		Stickers: [7]lipgloss.Color{"#202020", "#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff8000", "#ffffff"},
	}

	ThemePastel = Theme{
		Name:     "pastel",
		Primary:  lipgloss.Color("#ff9ff3"),
		Accent:   lipgloss.Color("#feca57"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Success:  lipgloss.Color("#5fd068"),
		Warning:  lipgloss.Color("#ffc048"),
		Stickers: [7]lipgloss.Color{"#2d1b2e", "#ff6b6b", "#7bed9f", "#70a1ff", "#eccc68", "#ffa502", "#f1f2f6"},
	}

	ThemeRetro = Theme{
		Name:     "retro",
		Primary:  lipgloss.Color("#00ff00"),
		Accent:   lipgloss.Color("#88ff88"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Success:  lipgloss.Color("#88ff88"),
		Warning:  lipgloss.Color("#ffff00"),
		Stickers: [7]lipgloss.Color{"#001100", "196", "46", "21", "226", "208", "231"},
	}

	CurrentTheme = ThemeClassic

	Themes = []Theme{
		ThemeClassic,
		ThemePastel,
		ThemeRetro,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme cycles to the theme after the named one.
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
