package domain

import (
	"sort"
	"time"
)

// AppUsage holds launch statistics for one app.
type AppUsage struct {
	LastUsed time.Time `json:"lastUsed"`
	Count    int       `json:"count"`
}

// UsageMap maps app ids to their usage.
type UsageMap map[string]AppUsage

// Record adds one launch at t.
func (u UsageMap) Record(appID string, t time.Time) {
	rec := u[appID]
	rec.Count++
	rec.LastUsed = t
	u[appID] = rec
}

// RecentIDs returns app ids ordered by last use, most recent first.
func (u UsageMap) RecentIDs(limit int) []string {
	ids := make([]string, 0, len(u))
	for id := range u {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ui, uj := u[ids[i]], u[ids[j]]
		if !ui.LastUsed.Equal(uj.LastUsed) {
			return ui.LastUsed.After(uj.LastUsed)
		}
		return ids[i] < ids[j]
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}
