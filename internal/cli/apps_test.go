package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomos/loomshell/internal/domain"
)

func TestAppsCommand_ListsCatalog(t *testing.T) {
	// Setup
	tc := newTestContainer(t)

	// Execute
	out, err := runCommand(newAppsCommand(tc.Container))

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Regexp(t, `^ID\s+TITLE\s+CATEGORY\s+PATH\s+FLAGS$`, lines[0])
	assert.Regexp(t, `^mail\s+Email\s+essentials\s+/dashboard/mail\s*$`, lines[1])
	assert.Contains(t, out, "beta,no-dock")
}

func TestAppsCommand_Filters(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIDs []string
	}{
		{
			name:    "query matches keywords",
			args:    []string{"--query", "compose"},
			wantIDs: []string{"mail"},
		},
		{
			name:    "category",
			args:    []string{"--category", "community"},
			wantIDs: []string{"docs", "store"},
		},
		{
			name:    "category is case insensitive",
			args:    []string{"--category", "Productivity"},
			wantIDs: []string{"cal"},
		},
		{
			name:    "alphabetical",
			args:    []string{"-c", "community", "--sort", "alphabetical"},
			wantIDs: []string{"store", "docs"},
		},
		{
			name:    "fuzzy",
			args:    []string{"-q", "clndr", "--search", "fuzzy"},
			wantIDs: []string{"cal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContainer(t)

			out, err := runCommand(newAppsCommand(tc.Container), tt.args...)

			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")[1:]
			ids := make([]string, 0, len(lines))
			for _, line := range lines {
				ids = append(ids, strings.Fields(line)[0])
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestAppsCommand_NoResults(t *testing.T) {
	tc := newTestContainer(t)

	out, err := runCommand(newAppsCommand(tc.Container), "--query", "zzz")

	require.NoError(t, err)
	assert.Equal(t, "No apps found\n", out)
}

func TestAppsCommand_InvalidFlags(t *testing.T) {
	tc := newTestContainer(t)

	_, err := runCommand(newAppsCommand(tc.Container), "--category", "games")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = runCommand(newAppsCommand(tc.Container), "--sort", "random")
	assert.ErrorIs(t, err, domain.ErrInvalidSortMode)

	_, err = runCommand(newAppsCommand(tc.Container), "--search", "regex")
	assert.ErrorIs(t, err, domain.ErrInvalidSearchMode)
}

func TestAppsShowCommand(t *testing.T) {
	tc := newTestContainer(t)
	tc.usage.Usage.Record("cal", time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))
	tc.usage.Usage.Record("cal", time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC))

	out, err := runCommand(newAppsCommand(tc.Container), "show", "cal")

	require.NoError(t, err)
	assert.Contains(t, out, "# Calendar (cal)")
	assert.Contains(t, out, "Plan your days")
	assert.Contains(t, out, "Category: Productivity")
	assert.Contains(t, out, "Path: /dashboard/cal")
	assert.Contains(t, out, "Keywords: [events]")
	assert.Contains(t, out, "Launches: 2")
	assert.Contains(t, out, "Last used: 2026-02-02T08:00:00Z")
}

func TestAppsShowCommand_NeverLaunched(t *testing.T) {
	tc := newTestContainer(t)

	out, err := runCommand(newAppsCommand(tc.Container), "show", "store")

	require.NoError(t, err)
	assert.Contains(t, out, "Flags: beta,no-dock")
	assert.Contains(t, out, "Launches: 0")
	assert.NotContains(t, out, "Last used")
}

func TestAppsShowCommand_NotFound(t *testing.T) {
	tc := newTestContainer(t)

	_, err := runCommand(newAppsCommand(tc.Container), "show", "nope")

	assert.ErrorIs(t, err, domain.ErrAppNotFound)
}
