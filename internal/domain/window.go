package domain

import "time"

// WindowState is the display state of a window instance.
type WindowState string

// Window states.
const (
	WindowFullscreen WindowState = "fullscreen"
	WindowMinimized  WindowState = "minimized"
	WindowClosed     WindowState = "closed" // Terminal; closed instances leave the live set
)

// WindowInstance is one launched app.
// Fields are ordered to minimize memory padding.
type WindowInstance struct {
	LaunchedAt time.Time
	App        *AppDefinition // Shared with the registry, never copied
	ID         string
	State      WindowState
	Seq        uint64 // Creation order; the carousel and dock sort by it
}

// AppID returns the id of the app the instance was launched from.
func (w WindowInstance) AppID() string {
	if w.App == nil {
		return ""
	}
	return w.App.ID
}

// DashboardPath is the route shown when no app is fullscreen.
const DashboardPath = "/dashboard"
