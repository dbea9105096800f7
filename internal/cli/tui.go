package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/tui"
)

// launchTUI runs the desktop until the user quits.
func launchTUI(c *app.Container) error {
	if err := requireContainer(c); err != nil {
		return err
	}
	m := tui.New(c)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
