package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme describes the canvas and accent colors.
type Theme struct {
	Name string
	// Accent is the base color used when none is configured.
	Accent   string
	Canvas   lipgloss.Style
	Farewell lipgloss.Style
}

// ThemeByName falls back to vapor for unknown names.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "midnight":
		return midnightTheme()
	case "dusk":
		return duskTheme()
	default:
		return vaporTheme()
	}
}

func vaporTheme() Theme {
	return Theme{
		Name:     "vapor",
		Accent:   "#FF61D8",
		Canvas:   lipgloss.NewStyle().Background(lipgloss.Color("#1B1C30")),
		Farewell: lipgloss.NewStyle().Foreground(lipgloss.Color("#7AF7FF")).Bold(true),
	}
}

func midnightTheme() Theme {
	return Theme{
		Name:     "midnight",
		Accent:   "#00E6D2",
		Canvas:   lipgloss.NewStyle().Background(lipgloss.Color("#02070D")),
		Farewell: lipgloss.NewStyle().Foreground(lipgloss.Color("#78FECF")).Bold(true),
	}
}

func duskTheme() Theme {
	return Theme{
		Name:     "dusk",
		Accent:   "#FFB4A2",
		Canvas:   lipgloss.NewStyle().Background(lipgloss.Color("#211830")),
		Farewell: lipgloss.NewStyle().Foreground(lipgloss.Color("#A0E8AF")).Bold(true).Italic(true),
	}
}

func nextTheme(current string) string {
	order := []string{"vapor", "midnight", "dusk"}
	for i, theme := range order {
		if theme == strings.ToLower(current) {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Farewell renders the notice printed after a cancelled run.
func Farewell(themeName string) string {
	return ThemeByName(themeName).Farewell.Render("Exited gracefully.")
}
