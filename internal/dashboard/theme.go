package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by Options.Theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	subtle  lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	danger  lipgloss.Color
	success lipgloss.Color
}

var palettes = map[string]palette{
	ThemeDark: {
		text:    lipgloss.Color("#F0F0F0"),
		muted:   lipgloss.Color("#B0B0B0"),
		subtle:  lipgloss.Color("#6E6E6E"),
		accent:  lipgloss.Color("#C89A3A"),
		border:  lipgloss.Color("#4A4A4A"),
		danger:  lipgloss.Color("#FF4D4F"),
		success: lipgloss.Color("#52C41A"),
	},
	ThemeLight: {
		text:    lipgloss.Color("#1F1F1F"),
		muted:   lipgloss.Color("#4A4A4A"),
		subtle:  lipgloss.Color("#7A7A7A"),
		accent:  lipgloss.Color("#1F6FEB"),
		border:  lipgloss.Color("#BFBFBF"),
		danger:  lipgloss.Color("#CF1322"),
		success: lipgloss.Color("#237804"),
	},
}

type theme struct {
	name        string
	activeNav   lipgloss.Style
	inactiveNav lipgloss.Style
	header      lipgloss.Style
	errText     lipgloss.Style
	status      lipgloss.Style
	card        lipgloss.Style
	cardTitle   lipgloss.Style
	cardValue   lipgloss.Style
	tableMuted  lipgloss.Style
	table       table.Styles
}

// ParseTheme validates a theme name; empty selects the dark theme.
func ParseTheme(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected dark or light)", name)
	}
}

func newTheme(name string) theme {
	p, ok := palettes[name]
	if !ok {
		name = ThemeDark
		p = palettes[ThemeDark]
	}
	t := theme{
		name: name,
		activeNav: lipgloss.NewStyle().
			Foreground(p.text).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.accent),
		inactiveNav: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		header:  lipgloss.NewStyle().Foreground(p.subtle),
		errText: lipgloss.NewStyle().Foreground(p.danger),
		status:  lipgloss.NewStyle().Foreground(p.success),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		cardTitle:  lipgloss.NewStyle().Foreground(p.subtle),
		cardValue:  lipgloss.NewStyle().Foreground(p.text).Bold(true),
		tableMuted: lipgloss.NewStyle().Foreground(p.muted),
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.border).
		Foreground(p.muted).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(p.text).
		Bold(true)
	t.table = styles
	return t
}

func (t theme) toggled() theme {
	if t.name == ThemeDark {
		return newTheme(ThemeLight)
	}
	return newTheme(ThemeDark)
}
