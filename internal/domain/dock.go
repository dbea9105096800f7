package domain

// DockFile represents the dock.toml file structure.
// Fields are ordered to minimize memory padding.
type DockFile struct {
	Pinned  []string `toml:"pinned"`  // Pinned app ids, in dock order
	Version int      `toml:"version"` // File format version (currently 1)
}

// DefaultMaxPinned is the number of registry entries pinned when no preference exists.
const DefaultMaxPinned = 5

// DockItem is one entry rendered in the dock.
// Fields are ordered to minimize memory padding.
type DockItem struct {
	App     *AppDefinition
	Running bool // Any live instance exists for the app
	Pinned  bool // False for running-but-unpinned items shown after the separator
}

// ResolvePinned maps pinned ids onto registry definitions.
// Unknown and duplicate ids are dropped. An empty list yields the first
// maxPinned registry entries.
func ResolvePinned(reg *Registry, pinned []string, maxPinned int) []*AppDefinition {
	if maxPinned <= 0 {
		maxPinned = DefaultMaxPinned
	}
	if len(pinned) == 0 {
		return reg.First(maxPinned)
	}
	seen := make(map[string]bool, len(pinned))
	out := make([]*AppDefinition, 0, len(pinned))
	for _, id := range pinned {
		if seen[id] {
			continue
		}
		seen[id] = true
		if app := reg.Get(id); app != nil {
			out = append(out, app)
		}
		if len(out) == maxPinned {
			break
		}
	}
	return out
}

// PinnedIDs returns the ids of the given definitions.
func PinnedIDs(apps []*AppDefinition) []string {
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.ID)
	}
	return ids
}

// BuildDockItems marks pinned apps that are running and, when showRunning
// is set, appends running apps that are not pinned in the order given.
// running lists app ids of live instances, oldest first, and may repeat ids.
func BuildDockItems(reg *Registry, pinned []*AppDefinition, running []string, showRunning bool) []DockItem {
	live := make(map[string]bool, len(running))
	for _, id := range running {
		live[id] = true
	}

	items := make([]DockItem, 0, len(pinned))
	isPinned := make(map[string]bool, len(pinned))
	for _, app := range pinned {
		isPinned[app.ID] = true
		items = append(items, DockItem{App: app, Pinned: true, Running: live[app.ID]})
	}
	if !showRunning {
		return items
	}
	for _, id := range running {
		if isPinned[id] {
			continue
		}
		isPinned[id] = true
		if app := reg.Get(id); app != nil {
			items = append(items, DockItem{App: app, Running: true})
		}
	}
	return items
}
