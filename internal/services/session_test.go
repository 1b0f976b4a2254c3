package service_test

import (
	"context"
	"testing"

	"github.com/florista/storefront/internal/models"
	repository "github.com/florista/storefront/internal/repositories"
	service "github.com/florista/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - New Session Starts On Home", func(t *testing.T) {
		// Arrange
		sessionService := service.NewSessionService(repository.NewSessionRepository())

		// Act
		state, err := sessionService.State(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ViewHome, state.ActiveView)
		assert.False(t, state.CartOpen)
		assert.Empty(t, state.SelectedFlowers)
	})

	t.Run("Success - View Switch Keeps Other State", func(t *testing.T) {
		// Arrange
		sessionService := service.NewSessionService(repository.NewSessionRepository())
		_, err := sessionService.SetCartOpen(ctx, "session-1", true)
		require.NoError(t, err)

		// Act
		state, err := sessionService.SetActiveView(ctx, "session-1", models.ViewCatalog)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ViewCatalog, state.ActiveView)
		assert.True(t, state.CartOpen)
	})

	t.Run("Success - Cart Dialog Open And Close", func(t *testing.T) {
		// Arrange
		sessionService := service.NewSessionService(repository.NewSessionRepository())

		// Act
		state, err := sessionService.SetCartOpen(ctx, "session-1", true)
		require.NoError(t, err)
		assert.True(t, state.CartOpen)

		state, err = sessionService.SetCartOpen(ctx, "session-1", false)

		// Assert
		require.NoError(t, err)
		assert.False(t, state.CartOpen)
	})
}
