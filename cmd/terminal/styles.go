package main

import "github.com/charmbracelet/lipgloss"

type theme struct {
	app      lipgloss.Style
	header   lipgloss.Style
	viewport lipgloss.Style
	footer   lipgloss.Style
	inactive lipgloss.Style
	error    lipgloss.Style
	warning  lipgloss.Style
	success  lipgloss.Style
	prompt   lipgloss.Style
	command  lipgloss.Style

	// markdown is the glamour style used for reviews.
	markdown string
}

type ThemeName string

const (
	ThemeConsole ThemeName = "console"
	ThemeAmber   ThemeName = "amber"
	ThemeLight   ThemeName = "light"
)

type palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Inactive  lipgloss.Color
	Markdown  string
}

var palettes = map[ThemeName]palette{
	ThemeConsole: {
		Primary:   lipgloss.Color("39"),
		Secondary: lipgloss.Color("75"),
		Success:   lipgloss.Color("46"),
		Warning:   lipgloss.Color("226"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
		Markdown:  "dark",
	},
	ThemeAmber: {
		Primary:   lipgloss.Color("220"),
		Secondary: lipgloss.Color("214"),
		Success:   lipgloss.Color("220"),
		Warning:   lipgloss.Color("208"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
		Markdown:  "dark",
	},
	ThemeLight: {
		Primary:   lipgloss.Color("25"),
		Secondary: lipgloss.Color("61"),
		Success:   lipgloss.Color("28"),
		Warning:   lipgloss.Color("130"),
		Error:     lipgloss.Color("160"),
		Inactive:  lipgloss.Color("245"),
		Markdown:  "light",
	},
}

// GetTheme returns the named theme, falling back to ThemeConsole.
func GetTheme(name ThemeName) theme {
	if p, ok := palettes[name]; ok {
		return newTheme(p)
	}
	return newTheme(palettes[ThemeConsole])
}

func ListThemes() []ThemeName {
	return []ThemeName{ThemeConsole, ThemeAmber, ThemeLight}
}

func newTheme(p palette) theme {
	return theme{
		app: lipgloss.NewStyle().Margin(0, 1),
		header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),
		viewport: lipgloss.NewStyle().PaddingLeft(1),
		footer: lipgloss.NewStyle().
			MarginTop(1).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Primary).
			PaddingTop(1),
		inactive: lipgloss.NewStyle().Foreground(p.Inactive),
		error:    lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		warning:  lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		success:  lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		prompt:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		command:  lipgloss.NewStyle().Foreground(p.Secondary).Italic(true),
		markdown: p.Markdown,
	}
}
