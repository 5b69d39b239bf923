package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the terminal host.
type Theme struct {
	Name       string
	Standard   lipgloss.Color
	Target     lipgloss.Color
	PointBoost lipgloss.Color
	PowerUp    lipgloss.Color
	Hit        lipgloss.Color
	Ball       lipgloss.Color
	Anomaly    lipgloss.Color
	Guide      lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Standard:   lipgloss.Color("#0000ff"),
		Target:     lipgloss.Color("#ff0000"),
		PointBoost: lipgloss.Color("#ff00ff"),
		PowerUp:    lipgloss.Color("#00ff00"),
		Hit:        lipgloss.Color("#444444"),
		Ball:       lipgloss.Color("#ffffff"),
		Anomaly:    lipgloss.Color("#ff4444"),
		Guide:      lipgloss.Color("#ffff00"),
		Accent:     lipgloss.Color("#00ffff"),
		Muted:      lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Standard:   lipgloss.Color("#00cc00"),
		Target:     lipgloss.Color("#88ff88"),
		PointBoost: lipgloss.Color("#ccff00"),
		PowerUp:    lipgloss.Color("#ffff00"),
		Hit:        lipgloss.Color("#005500"),
		Ball:       lipgloss.Color("#00ff00"),
		Anomaly:    lipgloss.Color("#ff0000"),
		Guide:      lipgloss.Color("#88ff88"),
		Accent:     lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Standard:   lipgloss.Color("#0077be"),
		Target:     lipgloss.Color("#ff6b6b"),
		PointBoost: lipgloss.Color("#ffd700"),
		PowerUp:    lipgloss.Color("#00ff88"),
		Hit:        lipgloss.Color("#4488aa"),
		Ball:       lipgloss.Color("#e0f0ff"),
		Anomaly:    lipgloss.Color("#ff4444"),
		Guide:      lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#00a8cc"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Standard:   lipgloss.Color("#feca57"),
		Target:     lipgloss.Color("#ff4757"),
		PointBoost: lipgloss.Color("#ff9ff3"),
		PowerUp:    lipgloss.Color("#5fd068"),
		Hit:        lipgloss.Color("#8b6b8c"),
		Ball:       lipgloss.Color("#fff5f5"),
		Anomaly:    lipgloss.Color("#ff0000"),
		Guide:      lipgloss.Color("#ffc048"),
		Accent:     lipgloss.Color("#ff6b6b"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// next is the theme after t in Themes, wrapping around.
func (t Theme) next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// Pens maps every Pen to a foreground style.
func (t Theme) Pens() []lipgloss.Style {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	pens := make([]lipgloss.Style, numPens)
	pens[PenNone] = lipgloss.NewStyle()
	pens[PenStandard] = fg(t.Standard)
	pens[PenTarget] = fg(t.Target)
	pens[PenPointBoost] = fg(t.PointBoost)
	pens[PenPowerUp] = fg(t.PowerUp)
	pens[PenHit] = fg(t.Hit)
	pens[PenBall] = fg(t.Ball)
	pens[PenAnomaly] = fg(t.Anomaly).Bold(true)
	pens[PenGuide] = fg(t.Guide)
	return pens
}
