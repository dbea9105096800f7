// Package router provides the in-process navigator that tracks the logical
// location of the desktop and the locations visited before it.
package router

import (
	"strings"

	"github.com/loomos/loomshell/internal/domain"
)

// Ensure Router implements domain.Navigator.
var _ domain.Navigator = (*Router)(nil)

// DefaultHistoryLimit bounds the visited history.
const DefaultHistoryLimit = 50

// Router records navigation intents.
// Like the window store, it is owned by the UI goroutine.
type Router struct {
	onChange func(from, to string)
	current  string
	history  []string
	limit    int
}

// Option configures a Router.
type Option func(*Router)

// WithHistoryLimit sets the maximum visited history length.
func WithHistoryLimit(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.limit = n
		}
	}
}

// WithOnChange registers a callback invoked after every location change.
func WithOnChange(fn func(from, to string)) Option {
	return func(r *Router) { r.onChange = fn }
}

// New creates a Router positioned at the dashboard.
func New(opts ...Option) *Router {
	r := &Router{
		current: domain.DashboardPath,
		limit:   DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Navigate moves to path. Navigating to the current location is a no-op.
func (r *Router) Navigate(path string) {
	path = normalize(path)
	if path == r.current {
		return
	}
	r.history = append(r.history, r.current)
	if len(r.history) > r.limit {
		r.history = r.history[len(r.history)-r.limit:]
	}
	r.move(path)
}

// Current returns the current location.
func (r *Router) Current() string {
	return r.current
}

// History returns the previously visited locations, oldest first.
func (r *Router) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// IsDashboard reports whether the current location is the dashboard root.
func (r *Router) IsDashboard() bool {
	return r.current == domain.DashboardPath
}

func (r *Router) move(path string) {
	from := r.current
	r.current = path
	if r.onChange != nil {
		r.onChange(from, path)
	}
}

// normalize ensures a leading slash and strips a trailing one.
func normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.DashboardPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
