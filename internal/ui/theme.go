package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors for the UI. Two themes exist, "light" and
// "dark"; the preference is persisted alongside the cards.
type Theme struct {
	Name string

	Text          string
	Muted         string
	Accent        string
	Success       string
	Danger        string
	Border        string
	BorderFocus   string
	SelectionBg   string
	SelectionText string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles contains the pre-built lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style
	Card        lipgloss.Style
	CardFocus   lipgloss.Style
	Selected    lipgloss.Style
	Footer      lipgloss.Style
}

var themes = map[string]Theme{
	"dark":  darkTheme(),
	"light": lightTheme(),
}

// GetTheme returns a theme by name, defaulting to dark.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return darkTheme()
}

// NextTheme returns the other theme's name; light and dark simply
// alternate.
func NextTheme(current string) string {
	if current == "dark" {
		return "light"
	}
	return "dark"
}

func darkTheme() Theme {
	return Theme{
		Name: "dark",

		Text:          "#cdd6f4",
		Muted:         "#7f849c",
		Accent:        "#89b4fa",
		Success:       "#a6e3a1",
		Danger:        "#f38ba8",
		Border:        "#45475a",
		BorderFocus:   "#89b4fa",
		SelectionBg:   "#313244",
		SelectionText: "#cdd6f4",
	}
}

func lightTheme() Theme {
	return Theme{
		Name: "light",

		Text:          "#4c4f69",
		Muted:         "#9ca0b0",
		Accent:        "#1e66f5",
		Success:       "#40a02b",
		Danger:        "#d20f39",
		Border:        "#bcc0cc",
		BorderFocus:   "#1e66f5",
		SelectionBg:   "#dce0e8",
		SelectionText: "#4c4f69",
	}
}
