package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "READ_TIMEOUT", "DB_AUTO_MIGRATE", "MONGODB_DSN", "MONGO_DB", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, "cobertura", cfg.MongoDB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ChangeLogEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WRITE_TIMEOUT", "5")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("MONGODB_DSN", "mongodb://localhost:27017")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.True(t, cfg.ChangeLogEnabled())
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	t.Setenv("DB_AUTO_MIGRATE", "sometimes")

	assert.Equal(t, 5, getEnvAsInt("DB_MAX_IDLE_CONNS", 5))
	assert.True(t, getEnvAsBool("DB_AUTO_MIGRATE", true))
}
