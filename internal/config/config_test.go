package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/florista/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Success - Reads Config File", func(t *testing.T) {
		// Arrange
		content := `
env: "test"
http_server:
  address: ":9090"
  shutdown_timeout: 10s
order_timing:
  assembling_delay: 50ms
  ready_delay: 200ms
composer:
  price_multiplier: 4
  bouquet_name: "Test Bouquet"
imagegen:
  static_url: "/images/test.jpg"
`
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
		t.Setenv("CONFIG_PATH", configPath)

		// Act
		cfg := config.MustLoad()

		// Assert
		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, 50*time.Millisecond, cfg.OrderTiming.AssemblingDelay)
		assert.Equal(t, 200*time.Millisecond, cfg.OrderTiming.ReadyDelay)
		assert.Equal(t, float64(4), cfg.Composer.PriceMultiplier)
		assert.Equal(t, "Test Bouquet", cfg.Composer.BouquetName)
		assert.Equal(t, "/images/test.jpg", cfg.ImageGen.StaticURL)
	})

	t.Run("Success - Defaults Fill Missing Fields", func(t *testing.T) {
		// Arrange
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(`env: "local"`), 0o644))
		t.Setenv("CONFIG_PATH", configPath)

		// Act
		cfg := config.MustLoad()

		// Assert
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 2*time.Second, cfg.OrderTiming.AssemblingDelay)
		assert.Equal(t, 17*time.Second, cfg.OrderTiming.ReadyDelay)
		assert.Equal(t, float64(5), cfg.Composer.PriceMultiplier)
		assert.Equal(t, "Signature Bouquet", cfg.Composer.BouquetName)
		assert.Empty(t, cfg.ImageGen.APIKey)
		assert.False(t, cfg.Tracing.Enabled)
	})

	t.Run("Success - Environment Overrides File", func(t *testing.T) {
		// Arrange
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(`env: "local"`), 0o644))
		t.Setenv("CONFIG_PATH", configPath)
		t.Setenv("ORDER_READY_DELAY", "30s")

		// Act
		cfg := config.MustLoad()

		// Assert
		assert.Equal(t, 30*time.Second, cfg.OrderTiming.ReadyDelay)
	})
}
