package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mailAndCalendar(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry([]AppDefinition{
		{ID: "mail", Title: "Email", Path: "/mail", Category: CategoryEssentials, Keywords: []string{"inbox", "compose"}},
		{ID: "cal", Title: "Calendar", Path: "/cal", Category: CategoryProductivity, Keywords: []string{"events"}},
	})
	require.NoError(t, err)
	return reg
}

func ids(apps []*AppDefinition) []string {
	return PinnedIDs(apps)
}

func TestFilterApps_Scenario(t *testing.T) {
	reg := mailAndCalendar(t)

	assert.Equal(t, []string{"mail"}, ids(FilterApps(reg.All(), "compose", CategoryAll)))
	assert.Equal(t, []string{"mail", "cal"}, ids(FilterApps(reg.All(), "", CategoryAll)))
}

func TestFilterApps(t *testing.T) {
	reg := mailAndCalendar(t)

	tests := []struct {
		name     string
		query    string
		category Category
		want     []string
	}{
		{"title case-insensitive", "EMAIL", CategoryAll, []string{"mail"}},
		{"keyword substring", "even", CategoryAll, []string{"cal"}},
		{"whitespace query", "   ", CategoryAll, []string{"mail", "cal"}},
		{"trimmed query", " inbox ", CategoryAll, []string{"mail"}},
		{"category id", "productivity", CategoryAll, []string{"cal"}},
		{"category filter", "", CategoryProductivity, []string{"cal"}},
		{"category and query", "compose", CategoryProductivity, []string{}},
		{"empty category means all", "", "", []string{"mail", "cal"}},
		{"no match", "zzz", CategoryAll, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterApps(reg.All(), tt.query, tt.category)))
		})
	}
}

func TestParseSortMode(t *testing.T) {
	m, err := ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, SortDefault, m)

	m, err = ParseSortMode("frequent")
	require.NoError(t, err)
	assert.Equal(t, SortFrequent, m)

	_, err = ParseSortMode("random")
	assert.ErrorIs(t, err, ErrInvalidSortMode)
}

func TestSortMode_Next(t *testing.T) {
	m := SortDefault
	seen := []SortMode{m}
	for range SortModes {
		m = m.Next()
		seen = append(seen, m)
	}
	assert.Equal(t, []SortMode{SortDefault, SortAlphabetical, SortRecent, SortFrequent, SortCategory, SortDefault}, seen)
	assert.Equal(t, SortDefault, SortMode("bogus").Next())
}

func TestSortMode_DependsOnUsage(t *testing.T) {
	assert.True(t, SortRecent.DependsOnUsage())
	assert.True(t, SortFrequent.DependsOnUsage())
	assert.False(t, SortAlphabetical.DependsOnUsage())
	assert.False(t, SortDefault.DependsOnUsage())
}

func TestSortApps(t *testing.T) {
	reg, err := NewRegistry([]AppDefinition{
		{ID: "b", Title: "beta", Path: "/b", Category: CategorySettings},
		{ID: "a", Title: "Alpha", Path: "/a", Category: CategoryCommunity},
		{ID: "c", Title: "Charlie", Path: "/c", Category: CategoryEssentials},
		{ID: "d", Title: "Delta", Path: "/d", Category: CategoryEssentials},
	})
	require.NoError(t, err)
	apps := reg.All()

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	usage := UsageMap{
		"d": {Count: 1, LastUsed: t0.Add(2 * time.Hour)},
		"a": {Count: 5, LastUsed: t0},
	}

	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(SortApps(apps, SortDefault, usage)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(SortApps(apps, SortAlphabetical, usage)))
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids(SortApps(apps, SortCategory, usage)))
	assert.Equal(t, []string{"d", "a", "b", "c"}, ids(SortApps(apps, SortRecent, usage)))
	assert.Equal(t, []string{"a", "d", "b", "c"}, ids(SortApps(apps, SortFrequent, usage)))

	// Input is untouched
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(apps))
}
