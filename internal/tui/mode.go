// Package tui provides the loomshell desktop: launcher, app window,
// minimized carousel and dock rendered with bubbletea.
package tui

// Mode represents which part of the desktop receives keys.
type Mode int

const (
	ModeDesktop  Mode = iota // Default: window and dock keys
	ModeLauncher             // Launcher overlay is open
	ModeCarousel             // Minimized cards have focus
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeLauncher:
		return "launcher"
	case ModeCarousel:
		return "carousel"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeLauncher:
		return true
	case ModeDesktop, ModeCarousel:
		return false
	}
	return false
}
