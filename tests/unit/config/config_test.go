package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstmitra/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")

	assert.Equal(t, 3, cfg.Knowledge.MaxResults)
	assert.Empty(t, cfg.Knowledge.Dir)

	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, 50000, cfg.Upload.MaxRows)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GSTMITRA_SERVER_PORT", ":9090")
	t.Setenv("GSTMITRA_LOG_LEVEL", "info")
	t.Setenv("GSTMITRA_KNOWLEDGE_MAX_RESULTS", "5")
	t.Setenv("GSTMITRA_UPLOAD_MAX_ROWS", "100")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Knowledge.MaxResults)
	assert.Equal(t, 100, cfg.Upload.MaxRows)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("GSTMITRA_SERVER_PORT", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("GSTMITRA_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestGeneratorConfig_PrimaryNilWithoutKey(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Nil(t, cfg.Generator.PrimaryConfig())
	assert.Nil(t, cfg.Generator.SecondaryConfig())
}

func TestGeneratorConfig_PrimaryFromEnv(t *testing.T) {
	t.Setenv("GSTMITRA_GENERATOR_PRIMARY_PROVIDER", "claude")
	t.Setenv("GSTMITRA_GENERATOR_PRIMARY_API_KEY", "sk-test")
	t.Setenv("GSTMITRA_GENERATOR_PRIMARY_DEFAULT_MODEL", "claude-sonnet-4-20250514")

	cfg, err := config.Load()
	require.NoError(t, err)

	primary := cfg.Generator.PrimaryConfig()
	require.NotNil(t, primary)
	assert.Equal(t, "claude", primary.Provider)
	assert.Equal(t, "sk-test", primary.APIKey)
	assert.Equal(t, "claude-sonnet-4-20250514", primary.DefaultModel)
	assert.Equal(t, 20, primary.TimeoutSecs)

	assert.Nil(t, cfg.Generator.SecondaryConfig())
}

func TestGeneratorConfig_ProviderWithoutKeyIsNil(t *testing.T) {
	t.Setenv("GSTMITRA_GENERATOR_PRIMARY_PROVIDER", "claude")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Nil(t, cfg.Generator.PrimaryConfig())
}
