// Package desktop holds the window store: the single source of truth for
// which app instances are open and in which display state.
package desktop

import (
	"sort"

	"github.com/google/uuid"

	"github.com/loomos/loomshell/internal/domain"
)

// Store tracks live window instances and the launcher flag.
//
// A Store is owned by one goroutine (the bubbletea update loop) and is not
// safe for concurrent use. Every command leaves at most one instance in the
// fullscreen state: transitions that would create a second one demote the
// incumbent to minimized first.
type Store struct {
	clock        domain.Clock
	newID        func() string
	instances    map[string]*domain.WindowInstance
	subscribers  []subscriber
	fullscreenID string
	nextSeq      uint64
	nextSubID    int
	launcherOpen bool
}

type subscriber struct {
	fn func(Event)
	id int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for LaunchedAt.
func WithClock(c domain.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator sets the instance id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore creates an empty store with the launcher closed.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:     domain.RealClock{},
		newID:     func() string { return uuid.New().String() },
		instances: make(map[string]*domain.WindowInstance),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Launch brings app to fullscreen.
//
// If a live instance of the app exists, the most recently created one is
// promoted instead of creating a duplicate. Otherwise a new instance is
// created. Any other fullscreen instance is demoted to minimized. Launching
// an app that is already fullscreen changes nothing.
func (s *Store) Launch(app *domain.AppDefinition) domain.WindowInstance {
	if cur, ok := s.instances[s.fullscreenID]; ok && cur.App.ID == app.ID {
		return *cur
	}
	if existing := s.latestFor(app.ID); existing != nil {
		prev := s.promote(existing)
		s.publish(Event{Kind: EventPromoted, InstanceID: existing.ID, AppID: app.ID, PrevFullscreen: prev, Fullscreen: existing.ID})
		return *existing
	}
	return s.create(app)
}

// LaunchNew always creates a new instance of app in fullscreen,
// demoting the incumbent fullscreen instance.
func (s *Store) LaunchNew(app *domain.AppDefinition) domain.WindowInstance {
	return s.create(app)
}

// Minimize moves a fullscreen instance to minimized.
// It reports false, changing nothing, when id is unknown or not fullscreen.
func (s *Store) Minimize(id string) bool {
	inst, ok := s.instances[id]
	if !ok || inst.State != domain.WindowFullscreen {
		return false
	}
	inst.State = domain.WindowMinimized
	s.fullscreenID = ""
	s.publish(Event{Kind: EventMinimized, InstanceID: id, AppID: inst.App.ID, PrevFullscreen: id})
	return true
}

// Restore moves a minimized instance to fullscreen, demoting the incumbent.
// It reports false, changing nothing, when id is unknown or not minimized.
func (s *Store) Restore(id string) bool {
	inst, ok := s.instances[id]
	if !ok || inst.State != domain.WindowMinimized {
		return false
	}
	prev := s.promote(inst)
	s.publish(Event{Kind: EventRestored, InstanceID: id, AppID: inst.App.ID, PrevFullscreen: prev, Fullscreen: id})
	return true
}

// Close removes an instance from the live set. Closing is terminal.
// It reports false when id is unknown, which includes already closed ids.
func (s *Store) Close(id string) bool {
	inst, ok := s.instances[id]
	if !ok {
		return false
	}
	prev := s.fullscreenID
	inst.State = domain.WindowClosed
	delete(s.instances, id)
	if s.fullscreenID == id {
		s.fullscreenID = ""
	}
	s.publish(Event{Kind: EventClosed, InstanceID: id, AppID: inst.App.ID, PrevFullscreen: prev, Fullscreen: s.fullscreenID})
	return true
}

// ToggleLauncher flips the launcher flag.
func (s *Store) ToggleLauncher() {
	s.setLauncher(!s.launcherOpen)
}

// OpenLauncher opens the launcher.
func (s *Store) OpenLauncher() {
	s.setLauncher(true)
}

// CloseLauncher closes the launcher. Window state is untouched.
func (s *Store) CloseLauncher() {
	s.setLauncher(false)
}

// LauncherOpen reports whether the launcher is open.
func (s *Store) LauncherOpen() bool {
	return s.launcherOpen
}

// Fullscreen returns the fullscreen instance, if any.
func (s *Store) Fullscreen() (domain.WindowInstance, bool) {
	inst, ok := s.instances[s.fullscreenID]
	if !ok {
		return domain.WindowInstance{}, false
	}
	return *inst, true
}

// Minimized returns minimized instances, oldest first.
func (s *Store) Minimized() []domain.WindowInstance {
	out := make([]domain.WindowInstance, 0, len(s.instances))
	for _, inst := range s.instances {
		if inst.State == domain.WindowMinimized {
			out = append(out, *inst)
		}
	}
	sortBySeq(out)
	return out
}

// Instances returns every live instance, oldest first.
func (s *Store) Instances() []domain.WindowInstance {
	out := make([]domain.WindowInstance, 0, len(s.instances))
	for _, inst := range s.instances {
		out = append(out, *inst)
	}
	sortBySeq(out)
	return out
}

// Get returns the live instance with the given id.
func (s *Store) Get(id string) (domain.WindowInstance, bool) {
	inst, ok := s.instances[id]
	if !ok {
		return domain.WindowInstance{}, false
	}
	return *inst, true
}

// IsAppRunning reports whether any live instance exists for appID.
func (s *Store) IsAppRunning(appID string) bool {
	for _, inst := range s.instances {
		if inst.App.ID == appID {
			return true
		}
	}
	return false
}

// Subscribe registers fn to receive an Event after every state change.
// Subscribers run synchronously in subscription order. No-op commands
// publish nothing. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) create(app *domain.AppDefinition) domain.WindowInstance {
	s.nextSeq++
	inst := &domain.WindowInstance{
		ID:         s.newID(),
		App:        app,
		State:      domain.WindowMinimized,
		Seq:        s.nextSeq,
		LaunchedAt: s.clock.Now(),
	}
	s.instances[inst.ID] = inst
	prev := s.promote(inst)
	s.publish(Event{Kind: EventLaunched, InstanceID: inst.ID, AppID: app.ID, PrevFullscreen: prev, Fullscreen: inst.ID})
	return *inst
}

// promote makes inst fullscreen, demoting the incumbent, and returns the
// incumbent's id.
func (s *Store) promote(inst *domain.WindowInstance) string {
	prev := s.fullscreenID
	if cur, ok := s.instances[prev]; ok && cur != inst {
		cur.State = domain.WindowMinimized
	}
	inst.State = domain.WindowFullscreen
	s.fullscreenID = inst.ID
	return prev
}

func (s *Store) latestFor(appID string) *domain.WindowInstance {
	var latest *domain.WindowInstance
	for _, inst := range s.instances {
		if inst.App.ID != appID {
			continue
		}
		if latest == nil || inst.Seq > latest.Seq {
			latest = inst
		}
	}
	return latest
}

func (s *Store) setLauncher(open bool) {
	if s.launcherOpen == open {
		return
	}
	s.launcherOpen = open
	s.publish(Event{Kind: EventLauncher, LauncherOpen: open, Fullscreen: s.fullscreenID, PrevFullscreen: s.fullscreenID})
}

func (s *Store) publish(ev Event) {
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn(ev)
	}
}

func sortBySeq(list []domain.WindowInstance) {
	sort.Slice(list, func(i, j int) bool { return list[i].Seq < list[j].Seq })
}
