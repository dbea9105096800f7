package domain

import "fmt"

// Registry is the immutable, ordered catalog of app definitions.
type Registry struct {
	byID map[string]*AppDefinition
	apps []*AppDefinition
}

// NewRegistry validates the definitions and builds a registry preserving their order.
func NewRegistry(apps []AppDefinition) (*Registry, error) {
	r := &Registry{
		byID: make(map[string]*AppDefinition, len(apps)),
		apps: make([]*AppDefinition, 0, len(apps)),
	}
	for i := range apps {
		app := apps[i]
		if err := app.Validate(); err != nil {
			return nil, fmt.Errorf("app %d (%q): %w", i, app.ID, err)
		}
		if _, dup := r.byID[app.ID]; dup {
			return nil, fmt.Errorf("app %q: %w", app.ID, ErrDuplicateAppID)
		}
		app.Keywords = append([]string(nil), app.Keywords...)
		r.byID[app.ID] = &app
		r.apps = append(r.apps, &app)
	}
	return r, nil
}

// All returns the definitions in registry order.
// The returned slice is a copy; the definitions are shared.
func (r *Registry) All() []*AppDefinition {
	out := make([]*AppDefinition, len(r.apps))
	copy(out, r.apps)
	return out
}

// Get returns the definition with the given id, or nil.
func (r *Registry) Get(id string) *AppDefinition {
	return r.byID[id]
}

// ByCategory returns the definitions in the category, in registry order.
// CategoryAll returns every definition.
func (r *Registry) ByCategory(c Category) []*AppDefinition {
	if c == CategoryAll || c == "" {
		return r.All()
	}
	var out []*AppDefinition
	for _, app := range r.apps {
		if app.Category == c {
			out = append(out, app)
		}
	}
	return out
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.apps)
}

// First returns up to n definitions from the start of the registry.
func (r *Registry) First(n int) []*AppDefinition {
	if n > len(r.apps) {
		n = len(r.apps)
	}
	if n < 0 {
		n = 0
	}
	out := make([]*AppDefinition, n)
	copy(out, r.apps[:n])
	return out
}
