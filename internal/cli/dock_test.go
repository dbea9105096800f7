package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomos/loomshell/internal/domain"
)

func TestDockShowCommand_Defaults(t *testing.T) {
	tc := newTestContainer(t)

	out, err := runCommand(newDockCommand(tc.Container), "show")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "(default dock)", lines[0])
	assert.Regexp(t, `^POS\s+ID\s+TITLE$`, lines[1])
	assert.Regexp(t, `^1\s+mail\s+Email$`, lines[2])
	assert.Regexp(t, `^5\s+admin\s+Admin Panel$`, lines[6])
}

func TestDockShowCommand_Saved(t *testing.T) {
	tc := newTestContainer(t)
	tc.dock.File.Pinned = []string{"prefs", "cal"}

	out, err := runCommand(newDockCommand(tc.Container), "show")

	require.NoError(t, err)
	assert.NotContains(t, out, "(default dock)")
	assert.Regexp(t, `(?m)^1\s+prefs\s+Settings$`, out)
	assert.Regexp(t, `(?m)^2\s+cal\s+Calendar$`, out)
}

func TestDockPinCommand(t *testing.T) {
	// Setup
	tc := newTestContainer(t)
	tc.dock.File.Pinned = []string{"mail", "cal"}

	// Execute
	out, err := runCommand(newDockCommand(tc.Container), "pin", "prefs", "--position", "1")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Pinned prefs")
	assert.Equal(t, []string{"prefs", "mail", "cal"}, tc.dock.File.Pinned)
	assert.Regexp(t, `(?m)^1\s+prefs\s+Settings$`, out)
}

func TestDockPinCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pinned  []string
		args    []string
		wantErr error
	}{
		{
			name:    "unknown app",
			pinned:  []string{"mail"},
			args:    []string{"pin", "nope"},
			wantErr: domain.ErrAppNotFound,
		},
		{
			name:    "not pinnable",
			pinned:  []string{"mail"},
			args:    []string{"pin", "store"},
			wantErr: domain.ErrAppNotPinnable,
		},
		{
			name:    "already pinned",
			pinned:  []string{"mail"},
			args:    []string{"pin", "mail"},
			wantErr: domain.ErrAlreadyPinned,
		},
		{
			name:    "full dock",
			pinned:  nil,
			args:    []string{"pin", "prefs"},
			wantErr: domain.ErrDockFull,
		},
		{
			name:    "missing argument",
			pinned:  []string{"mail"},
			args:    []string{"pin"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContainer(t)
			tc.dock.File.Pinned = tt.pinned

			_, err := runCommand(newDockCommand(tc.Container), tt.args...)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Zero(t, tc.dock.SaveCalls)
		})
	}
}

func TestDockUnpinCommand(t *testing.T) {
	tc := newTestContainer(t)
	tc.dock.File.Pinned = []string{"mail", "cal"}

	out, err := runCommand(newDockCommand(tc.Container), "unpin", "mail")

	require.NoError(t, err)
	assert.Contains(t, out, "Unpinned mail")
	assert.Equal(t, []string{"cal"}, tc.dock.File.Pinned)

	_, err = runCommand(newDockCommand(tc.Container), "unpin", "pay")
	assert.ErrorIs(t, err, domain.ErrNotPinned)
}

func TestDockUnpinCommand_LastRestoresDefaults(t *testing.T) {
	tc := newTestContainer(t)
	tc.dock.File.Pinned = []string{"cal"}

	out, err := runCommand(newDockCommand(tc.Container), "unpin", "cal")

	require.NoError(t, err)
	assert.Contains(t, out, "Dock reset to defaults")
}

func TestDockMoveCommand(t *testing.T) {
	tc := newTestContainer(t)
	tc.dock.File.Pinned = []string{"mail", "cal", "pay"}

	_, err := runCommand(newDockCommand(tc.Container), "move", "pay", "1")

	require.NoError(t, err)
	assert.Equal(t, []string{"pay", "mail", "cal"}, tc.dock.File.Pinned)
}

func TestDockMoveCommand_InvalidPosition(t *testing.T) {
	tests := []string{"0", "4", "first"}

	for _, pos := range tests {
		t.Run(pos, func(t *testing.T) {
			tc := newTestContainer(t)
			tc.dock.File.Pinned = []string{"mail", "cal", "pay"}

			_, err := runCommand(newDockCommand(tc.Container), "move", "pay", pos)

			assert.ErrorIs(t, err, domain.ErrInvalidPosition)
		})
	}
}

func TestDockResetCommand(t *testing.T) {
	tc := newTestContainer(t)
	tc.dock.File.Pinned = []string{"cal"}

	out, err := runCommand(newDockCommand(tc.Container), "reset")

	require.NoError(t, err)
	assert.Equal(t, "Dock reset to defaults\n", out)
	assert.Empty(t, tc.dock.File.Pinned)
}

func TestDockCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	tc := newTestContainer(t)

	out, err := runCommand(newDockCommand(tc.Container))

	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands:")
	for _, sub := range []string{"show", "pin", "unpin", "move", "reset"} {
		assert.Contains(t, out, sub)
	}
}
