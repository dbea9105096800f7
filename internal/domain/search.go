package domain

import (
	"sort"
	"strings"
)

// MatchApp reports whether the app matches a free-text query.
// An empty query matches everything. Otherwise the trimmed query,
// case-insensitively, must be a substring of the title, description,
// a keyword or the category id.
func MatchApp(app *AppDefinition, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(app.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(app.Description), q) {
		return true
	}
	for _, kw := range app.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return strings.Contains(string(app.Category), q)
}

// FilterApps returns the apps matching both the query and the category,
// preserving their order.
func FilterApps(apps []*AppDefinition, query string, category Category) []*AppDefinition {
	out := make([]*AppDefinition, 0, len(apps))
	for _, app := range apps {
		if category != CategoryAll && category != "" && app.Category != category {
			continue
		}
		if MatchApp(app, query) {
			out = append(out, app)
		}
	}
	return out
}

// SortMode orders launcher results.
type SortMode string

// Sort modes.
const (
	SortDefault      SortMode = "default" // Registry order
	SortAlphabetical SortMode = "alphabetical"
	SortRecent       SortMode = "recent"
	SortFrequent     SortMode = "frequent"
	SortCategory     SortMode = "category"
)

// SortModes lists the modes in cycling order.
var SortModes = []SortMode{SortDefault, SortAlphabetical, SortRecent, SortFrequent, SortCategory}

// ParseSortMode parses a sort mode; empty means SortDefault.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortDefault, nil
	}
	for _, m := range SortModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", ErrInvalidSortMode
}

// Next returns the mode after m in SortModes.
func (m SortMode) Next() SortMode {
	for i, mode := range SortModes {
		if mode == m {
			return SortModes[(i+1)%len(SortModes)]
		}
	}
	return SortDefault
}

// DependsOnUsage reports whether results in this mode change as apps are launched.
func (m SortMode) DependsOnUsage() bool {
	return m == SortRecent || m == SortFrequent
}

// SortApps returns a sorted copy of apps. Ties keep their input order.
// Apps without usage sort after apps with usage in the recent and frequent modes.
func SortApps(apps []*AppDefinition, mode SortMode, usage UsageMap) []*AppDefinition {
	out := make([]*AppDefinition, len(apps))
	copy(out, apps)

	switch mode {
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortCategory:
		rank := make(map[Category]int, len(CategoryOrder))
		for i, c := range CategoryOrder {
			rank[c] = i
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Category != out[j].Category {
				return rank[out[i].Category] < rank[out[j].Category]
			}
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			ui, oki := usage[out[i].ID]
			uj, okj := usage[out[j].ID]
			if oki != okj {
				return oki
			}
			return ui.LastUsed.After(uj.LastUsed)
		})
	case SortFrequent:
		sort.SliceStable(out, func(i, j int) bool {
			ui, oki := usage[out[i].ID]
			uj, okj := usage[out[j].ID]
			if oki != okj {
				return oki
			}
			return ui.Count > uj.Count
		})
	case SortDefault:
	}
	return out
}
