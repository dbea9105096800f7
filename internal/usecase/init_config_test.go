package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/testutil"
	"github.com/loomos/loomshell/internal/usecase"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates local config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.True(t, manager.InitLocalCalled)
		assert.False(t, manager.InitGlobalCalled)
		assert.Equal(t, "/work/.loomshell.toml", out.Path)
	})

	t.Run("creates global config with force", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{Global: true, Force: true})

		require.NoError(t, err)
		assert.True(t, manager.InitGlobalCalled)
		assert.True(t, manager.LastForce)
		assert.Equal(t, "/home/test/.config/loomshell/config.toml", out.Path)
	})

	t.Run("returns error when config exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitLocalErr = domain.ErrConfigExists

		uc := usecase.NewInitConfig(manager)
		_, err := uc.Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
