package desktop

// EventKind identifies the command that changed the store.
type EventKind int

// Event kinds.
const (
	EventLaunched EventKind = iota // New instance created
	EventPromoted                  // Existing instance brought back by Launch
	EventMinimized
	EventRestored
	EventClosed
	EventLauncher // Launcher flag changed
)

// String returns the kind name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventLaunched:
		return "launched"
	case EventPromoted:
		return "promoted"
	case EventMinimized:
		return "minimized"
	case EventRestored:
		return "restored"
	case EventClosed:
		return "closed"
	case EventLauncher:
		return "launcher"
	default:
		return "unknown"
	}
}

// Event describes one state change.
// Fields are ordered to minimize memory padding.
type Event struct {
	InstanceID     string // Empty for launcher events
	AppID          string
	PrevFullscreen string // Fullscreen instance id before the change
	Fullscreen     string // Fullscreen instance id after the change
	Kind           EventKind
	LauncherOpen   bool
}

// FullscreenChanged reports whether the fullscreen instance differs
// before and after the change.
func (e Event) FullscreenChanged() bool {
	return e.PrevFullscreen != e.Fullscreen
}
