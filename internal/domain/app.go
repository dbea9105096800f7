package domain

import "strings"

// Category groups apps in the launcher.
type Category string

// App categories.
const (
	CategoryAll          Category = "all" // Pseudo-category: no filter
	CategoryEssentials   Category = "essentials"
	CategoryPersonal     Category = "personal"
	CategoryCommunity    Category = "community"
	CategoryProductivity Category = "productivity"
	CategoryAdmin        Category = "admin"
	CategorySettings     Category = "settings"
)

// CategoryOrder is the display order of the real categories.
var CategoryOrder = []Category{
	CategoryEssentials,
	CategoryPersonal,
	CategoryCommunity,
	CategoryProductivity,
	CategoryAdmin,
	CategorySettings,
}

// Label returns the display label of the category.
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All Apps"
	case CategoryEssentials:
		return "Essentials"
	case CategoryPersonal:
		return "Personal"
	case CategoryCommunity:
		return "Community"
	case CategoryProductivity:
		return "Productivity"
	case CategoryAdmin:
		return "Admin"
	case CategorySettings:
		return "Settings"
	}
	return string(c)
}

// IsValid reports whether c is one of the real categories.
// CategoryAll is a filter value, not a category an app can belong to.
func (c Category) IsValid() bool {
	for _, known := range CategoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses a category filter value.
// An empty string is treated as CategoryAll.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || c == CategoryAll {
		return CategoryAll, nil
	}
	if !c.IsValid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// AppDefinition describes an installable sub-application.
// Definitions are loaded once from the registry and never mutated.
//
//nolint:govet // Field order follows the registry file layout
type AppDefinition struct {
	ID            string   `toml:"id" yaml:"id"`
	Title         string   `toml:"title" yaml:"title"`
	Description   string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Icon          string   `toml:"icon,omitempty" yaml:"icon,omitempty"` // Glyph rendered in the dock and launcher
	Path          string   `toml:"path" yaml:"path"`                     // Route navigated to while fullscreen
	Gradient      string   `toml:"gradient,omitempty" yaml:"gradient,omitempty"`
	Color         string   `toml:"color,omitempty" yaml:"color,omitempty"` // Hex accent color
	Category      Category `toml:"category" yaml:"category"`
	Keywords      []string `toml:"keywords,omitempty" yaml:"keywords,omitempty"`
	IsNew         bool     `toml:"is_new,omitempty" yaml:"is_new,omitempty"`
	IsBeta        bool     `toml:"is_beta,omitempty" yaml:"is_beta,omitempty"`
	RequiresAdmin bool     `toml:"requires_admin,omitempty" yaml:"requires_admin,omitempty"`
	CanPinToDock  *bool    `toml:"can_pin_to_dock,omitempty" yaml:"can_pin_to_dock,omitempty"`
}

// Pinnable reports whether the app may be pinned to the dock.
// Apps that do not say otherwise are pinnable.
func (a *AppDefinition) Pinnable() bool {
	return a.CanPinToDock == nil || *a.CanPinToDock
}

// Glyph returns the icon, falling back to the first letter of the title.
func (a *AppDefinition) Glyph() string {
	if a.Icon != "" {
		return a.Icon
	}
	for _, r := range a.Title {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Validate checks the fields every registry entry must carry.
func (a *AppDefinition) Validate() error {
	if strings.TrimSpace(a.ID) == "" || strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Path) == "" {
		return ErrInvalidApp
	}
	if !a.Category.IsValid() {
		return ErrUnknownCategory
	}
	return nil
}
