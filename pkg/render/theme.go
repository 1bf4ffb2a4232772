package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name     string
	Primary  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Swatches bool
	Icons    ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
}

// DefaultTheme returns a color theme. Its colors adapt to the background
// lipgloss has been told about (lipgloss.SetHasDarkBackground).
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Primary:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"}),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "34"}),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Bold:     lipgloss.NewStyle().Bold(true),
		Swatches: true,
		Icons: ThemeIcons{
			Pass: "✓",
			Fail: "✗",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors, ASCII icons).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Primary: lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Pass: "+",
			Fail: "x",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
