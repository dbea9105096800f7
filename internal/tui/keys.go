package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Desktop
	ToggleLauncher key.Binding // Configurable, ctrl+l by default
	Minimize       key.Binding // Minimize the fullscreen app
	CloseWindow    key.Binding // Close the fullscreen app
	FocusCarousel  key.Binding // Move focus to the minimized cards
	LaunchPinned   key.Binding // 1-9 launch the n-th pinned app

	// Launcher
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Sort         key.Binding // Cycle sort modes
	LaunchNew    key.Binding // Open another instance of the selection

	// Carousel
	Left      key.Binding
	Right     key.Binding
	CloseCard key.Binding // Close the selected card
	Dismiss   key.Binding // Same as swiping the selected card away

	// General
	Enter  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings with the given launcher toggle key.
func DefaultKeyMap(toggleKey string) KeyMap {
	if toggleKey == "" {
		toggleKey = "ctrl+l"
	}
	return KeyMap{
		ToggleLauncher: key.NewBinding(
			key.WithKeys(toggleKey),
			key.WithHelp(toggleKey, "apps"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "minimize"),
		),
		CloseWindow: key.NewBinding(
			key.WithKeys("alt+w"),
			key.WithHelp("alt+w", "close"),
		),
		FocusCarousel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cards"),
		),
		LaunchPinned: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "dock"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		Sort: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sort"),
		),
		LaunchNew: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "new window"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev card"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next card"),
		),
		CloseCard: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close card"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "swipe away"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleLauncher, k.LaunchPinned, k.Minimize, k.CloseWindow, k.FocusCarousel, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleLauncher, k.LaunchPinned, k.Minimize, k.CloseWindow, k.Quit},
		{k.Up, k.Down, k.NextCategory, k.PrevCategory, k.Sort, k.Enter, k.LaunchNew, k.Escape},
		{k.FocusCarousel, k.Left, k.Right, k.CloseCard, k.Dismiss},
	}
}

// launcherHelp returns the bindings shown in the launcher footer.
func (k KeyMap) launcherHelp() []key.Binding {
	return []key.Binding{k.Enter, k.NextCategory, k.Sort, k.Escape}
}

// carouselHelp returns the bindings shown while the carousel has focus.
func (k KeyMap) carouselHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Enter, k.CloseCard, k.Dismiss, k.Escape}
}
