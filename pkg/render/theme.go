package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
	Warn string
	Info string
	Skip string
}

var (
	unicodeIcons = ThemeIcons{Pass: "✓", Fail: "✗", Warn: "⚠", Info: "●", Skip: "○"}
	asciiIcons   = ThemeIcons{Pass: "+", Fail: "x", Warn: "!", Info: "*", Skip: "-"}
)

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"orca":    OrcaTheme,
	"mono":    MonoTheme,
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: fg("39"),  // blue
		Success: fg("34"),  // green
		Warning: fg("214"), // orange
		Error:   fg("196"), // red
		Muted:   fg("242"), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   unicodeIcons,
	}
}

// OrcaTheme returns a muted theme.
func OrcaTheme() Theme {
	icons := unicodeIcons
	icons.Warn = "!"
	return Theme{
		Name:    "orca",
		Primary: fg("75"),  // pale blue
		Success: fg("108"), // sage green
		Warning: fg("179"), // muted gold
		Error:   fg("167"), // muted red
		Muted:   fg("245"), // lighter gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   icons,
	}
}

// MonoTheme returns a theme without colors or non-ASCII icons.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Primary: plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Muted:   plain,
		Bold:    plain,
		Icons:   asciiIcons,
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	if f, ok := themes[name]; ok {
		return f()
	}
	return DefaultTheme()
}
