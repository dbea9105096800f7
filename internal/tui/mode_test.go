package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		want string
		mode Mode
	}{
		{"desktop", ModeDesktop},
		{"launcher", ModeLauncher},
		{"carousel", ModeCarousel},
		{"unknown", Mode(99)},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestMode_IsInputMode(t *testing.T) {
	assert.True(t, ModeLauncher.IsInputMode())
	assert.False(t, ModeDesktop.IsInputMode())
	assert.False(t, ModeCarousel.IsInputMode())
}
