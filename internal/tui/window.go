package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/muesli/reflow/wordwrap"

	"github.com/loomos/loomshell/internal/domain"
)

// recentRoutes is how many visited locations the dashboard lists.
const recentRoutes = 5

// viewDashboard renders the host page shown when no app is fullscreen.
func (m *Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + m.styles.Heading.Render("loomOS") + "\n\n")
	b.WriteString("  " + m.styles.Text.Render(fmt.Sprintf(
		"Press %s to open the launcher, or pick an app from the dock.",
		m.keys.ToggleLauncher.Help().Key,
	)) + "\n")
	b.WriteString("  " + m.help.ShortHelpView(m.footerHelp(m.keys.ShortHelp())) + "\n")

	history := m.router.History()
	if len(history) > 0 {
		b.WriteString("\n  " + m.styles.Muted.Render("Recently visited") + "\n")
		for i := len(history) - 1; i >= 0 && i >= len(history)-recentRoutes; i-- {
			b.WriteString("    " + m.styles.Text.Render(history[i]) + "\n")
		}
	}

	if n := len(m.store.Minimized()); n > 0 {
		b.WriteString("\n  " + m.styles.Muted.Render(fmt.Sprintf(
			"%d minimized %s, %s to browse",
			n, plural(n, "app", "apps"), m.keys.FocusCarousel.Help().Key,
		)) + "\n")
	}
	return b.String()
}

// viewAppPage renders the page of the fullscreen app.
func (m *Model) viewAppPage(inst domain.WindowInstance, width int) string {
	app := inst.App
	var b strings.Builder

	b.WriteString("\n")
	heading := m.styles.GlyphStyle(app).Render(app.Glyph()) + " " + m.styles.Heading.Render(app.Title)
	if badges := badgeText(app); badges != "" {
		heading += " " + m.styles.Badge.Render(badges)
	}
	b.WriteString("  " + heading + "\n\n")

	if app.Description != "" {
		wrapped := wordwrap.String(app.Description, max(width-4, 10))
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString("  " + m.styles.Text.Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + m.styles.Muted.Render(app.Path) + "\n")
	b.WriteString("  " + m.styles.Muted.Render(fmt.Sprintf(
		"%s · opened %s", app.Category.Label(), inst.LaunchedAt.Format("15:04"),
	)) + "\n")
	b.WriteString("\n  " + m.styles.Footer.Render(m.help.ShortHelpView(m.footerHelp([]key.Binding{
		m.keys.Minimize, m.keys.CloseWindow, m.keys.ToggleLauncher, m.keys.FocusCarousel,
	}))) + "\n")
	return b.String()
}

// footerHelp returns the carousel bindings while the cards have focus,
// otherwise bindings.
func (m *Model) footerHelp(bindings []key.Binding) []key.Binding {
	if m.Mode() == ModeCarousel {
		return m.keys.carouselHelp()
	}
	return bindings
}

// badgeText returns the NEW and BETA markers of app.
func badgeText(app *domain.AppDefinition) string {
	var badges []string
	if app.IsNew {
		badges = append(badges, "NEW")
	}
	if app.IsBeta {
		badges = append(badges, "BETA")
	}
	if app.RequiresAdmin {
		badges = append(badges, "ADMIN")
	}
	return strings.Join(badges, " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
