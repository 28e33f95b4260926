package tui

import (
	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name   string
	Accent lipgloss.Color
	Base   lipgloss.Style
	Header lipgloss.Style
	Clock  lipgloss.Style
	Break  lipgloss.Style
	Label  lipgloss.Style
	Dim    lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Frame  lipgloss.Style
}

func newTheme(name string, accent, breakColor lipgloss.Color) Theme {
	return Theme{
		Name:   name,
		Accent: accent,
		Base:   lipgloss.NewStyle().Margin(1, 2),
		Header: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Clock:  lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),
		Break:  lipgloss.NewStyle().Foreground(breakColor).Bold(true).Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status: lipgloss.NewStyle().Foreground(accent).Italic(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 3),
	}
}

var Themes = map[string]Theme{
	config.ThemeCyan:    newTheme(config.ThemeCyan, lipgloss.Color("51"), lipgloss.Color("214")),
	config.ThemeMagenta: newTheme(config.ThemeMagenta, lipgloss.Color("201"), lipgloss.Color("117")),
	config.ThemeGreen:   newTheme(config.ThemeGreen, lipgloss.Color("46"), lipgloss.Color("221")),
}

var themeOrder = []string{config.ThemeCyan, config.ThemeMagenta, config.ThemeGreen}

// ThemeFor falls back to cyan for unknown names.
func ThemeFor(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[config.ThemeCyan]
}

func nextThemeName(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
