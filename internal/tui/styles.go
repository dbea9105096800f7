package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loomos/loomshell/internal/domain"
)

// Colors defines the color palette of the desktop.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color

	// Text
	Text      lipgloss.Color
	TextFaint lipgloss.Color
}{
	Primary:    lipgloss.Color("#5B8DEF"), // loomOS blue
	Secondary:  lipgloss.Color("#9B6BF2"), // Violet
	Muted:      lipgloss.Color("#6B7280"), // Gray
	Error:      lipgloss.Color("#E5484D"), // Red
	Success:    lipgloss.Color("#3CB878"), // Green
	Warning:    lipgloss.Color("#F2A33A"), // Amber
	Background: lipgloss.Color("#1F2430"), // Slate
	Surface:    lipgloss.Color("#2A3040"), // Raised slate

	Text:      lipgloss.Color("#E6E9EF"),
	TextFaint: lipgloss.Color("#8B93A7"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// Title bar
	TitleBar   lipgloss.Style
	TitleText  lipgloss.Style
	TitleMuted lipgloss.Style
	Control    lipgloss.Style

	// Host page
	Heading lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Badge   lipgloss.Style

	// Launcher
	Overlay        lipgloss.Style
	Tab            lipgloss.Style
	TabActive      lipgloss.Style
	Result         lipgloss.Style
	ResultSelected lipgloss.Style
	Divider        lipgloss.Style

	// Carousel
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardFading   lipgloss.Style
	CardClose    lipgloss.Style

	// Dock
	Dock        lipgloss.Style
	DockRunning lipgloss.Style
	DockToggle  lipgloss.Style
	DockSep     lipgloss.Style

	// Messages
	ErrorMsg lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		TitleBar: lipgloss.NewStyle().
			Background(Colors.Surface).
			Foreground(Colors.Text),
		TitleText: lipgloss.NewStyle().
			Background(Colors.Surface).
			Foreground(Colors.Text).
			Bold(true),
		TitleMuted: lipgloss.NewStyle().
			Background(Colors.Surface).
			Foreground(Colors.TextFaint),
		Control: lipgloss.NewStyle().
			Background(Colors.Surface).
			Foreground(Colors.Secondary).
			Bold(true),

		Heading: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(Colors.Text),
		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Badge: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(Colors.TextFaint),
		TabActive: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			Underline(true),
		Result: lipgloss.NewStyle().
			Foreground(Colors.Text),
		ResultSelected: lipgloss.NewStyle().
			Foreground(Colors.Background).
			Background(Colors.Primary).
			Bold(true),
		Divider: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),
		CardFading: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Foreground(Colors.Muted).
			Faint(true),
		CardClose: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Dock: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),
		DockRunning: lipgloss.NewStyle().
			Foreground(Colors.Success),
		DockToggle: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		DockSep: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// GlyphStyle returns the style of an app glyph, tinted with the app color.
func (s Styles) GlyphStyle(app *domain.AppDefinition) lipgloss.Style {
	if app == nil || app.Color == "" {
		return lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(app.Color)).Bold(true)
}
