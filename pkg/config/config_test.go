package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("READ_TIMEOUT", "not-a-number")

	require.NoError(t, Load())

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.Equal(t, 15, AppConfig.Server.ReadTimeout)
	assert.Equal(t, "sqlite3", AppConfig.Database.Driver)
	assert.Equal(t, "http://localhost:9090", AppConfig.API.BaseURL)
	assert.Equal(t, WorkerConfig{PromotionWorkers: 1, PromotionInterval: 60}, AppConfig.Worker)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/showcase")
	t.Setenv("GITHUB_TOKEN", "token")
	t.Setenv("API_BASE_URL", "https://showcase.example.com")
	t.Setenv("WRITE_TIMEOUT", "30")
	t.Setenv("PROMOTION_WORKERS", "0")

	require.NoError(t, Load())

	assert.Equal(t, "postgres", AppConfig.Database.Driver)
	assert.Equal(t, "postgres://localhost/showcase", AppConfig.Database.URL)
	assert.Equal(t, "token", AppConfig.GitHub.Token)
	assert.Equal(t, "https://showcase.example.com", AppConfig.API.BaseURL)
	assert.Equal(t, 30, AppConfig.Server.WriteTimeout)
	assert.Equal(t, 0, AppConfig.Worker.PromotionWorkers)
}
