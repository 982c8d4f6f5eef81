package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Generator GeneratorConfig
	Knowledge KnowledgeConfig
	Upload    UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeneratorProviderConfig holds settings for a single LLM text generation provider.
type GeneratorProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// GeneratorConfig holds text generation settings with primary/secondary support.
// When no provider carries an API key the service runs on its deterministic
// templates alone.
type GeneratorConfig struct {
	Primary   GeneratorProviderConfig `mapstructure:"primary"`
	Secondary GeneratorProviderConfig `mapstructure:"secondary"`
}

// PrimaryConfig returns the primary generator provider config, or nil if not configured.
func (g *GeneratorConfig) PrimaryConfig() *GeneratorProviderConfig {
	if g.Primary.Provider != "" && g.Primary.APIKey != "" {
		return &g.Primary
	}
	return nil
}

// SecondaryConfig returns the secondary generator provider config, or nil if not configured.
func (g *GeneratorConfig) SecondaryConfig() *GeneratorProviderConfig {
	if g.Secondary.Provider != "" && g.Secondary.APIKey != "" {
		return &g.Secondary
	}
	return nil
}

// KnowledgeConfig holds knowledge corpus settings.
type KnowledgeConfig struct {
	// Dir is an optional directory of *.txt/*.md documents indexed into the
	// corpus at startup alongside the built-in documents.
	Dir        string `mapstructure:"dir"`
	MaxResults int    `mapstructure:"max_results"`
}

// UploadConfig holds CSV upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxRows       int   `mapstructure:"max_rows"`
}

// Load reads configuration from environment variables with the GSTMITRA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTMITRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// Generator defaults
	v.SetDefault("generator.primary.provider", "")
	v.SetDefault("generator.primary.api_key", "")
	v.SetDefault("generator.primary.default_model", "")
	v.SetDefault("generator.primary.timeout_secs", 20)
	v.SetDefault("generator.secondary.provider", "")
	v.SetDefault("generator.secondary.api_key", "")
	v.SetDefault("generator.secondary.default_model", "")
	v.SetDefault("generator.secondary.timeout_secs", 20)

	// Knowledge defaults
	v.SetDefault("knowledge.dir", "")
	v.SetDefault("knowledge.max_results", 3)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.max_rows", 50000)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "GSTMITRA_SERVER_PORT",
		"server.read_timeout":               "GSTMITRA_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "GSTMITRA_SERVER_WRITE_TIMEOUT",
		"server.environment":                "GSTMITRA_SERVER_ENVIRONMENT",
		"log.level":                         "GSTMITRA_LOG_LEVEL",
		"log.format":                        "GSTMITRA_LOG_FORMAT",
		"cors.allowed_origins":              "GSTMITRA_CORS_ALLOWED_ORIGINS",
		"generator.primary.provider":        "GSTMITRA_GENERATOR_PRIMARY_PROVIDER",
		"generator.primary.api_key":         "GSTMITRA_GENERATOR_PRIMARY_API_KEY",
		"generator.primary.default_model":   "GSTMITRA_GENERATOR_PRIMARY_DEFAULT_MODEL",
		"generator.primary.timeout_secs":    "GSTMITRA_GENERATOR_PRIMARY_TIMEOUT_SECS",
		"generator.secondary.provider":      "GSTMITRA_GENERATOR_SECONDARY_PROVIDER",
		"generator.secondary.api_key":       "GSTMITRA_GENERATOR_SECONDARY_API_KEY",
		"generator.secondary.default_model": "GSTMITRA_GENERATOR_SECONDARY_DEFAULT_MODEL",
		"generator.secondary.timeout_secs":  "GSTMITRA_GENERATOR_SECONDARY_TIMEOUT_SECS",
		"knowledge.dir":                     "GSTMITRA_KNOWLEDGE_DIR",
		"knowledge.max_results":             "GSTMITRA_KNOWLEDGE_MAX_RESULTS",
		"upload.max_file_size_mb":           "GSTMITRA_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_rows":                   "GSTMITRA_UPLOAD_MAX_ROWS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTMITRA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTMITRA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Generator = GeneratorConfig{
		Primary: GeneratorProviderConfig{
			Provider:     v.GetString("generator.primary.provider"),
			APIKey:       v.GetString("generator.primary.api_key"),
			DefaultModel: v.GetString("generator.primary.default_model"),
			TimeoutSecs:  v.GetInt("generator.primary.timeout_secs"),
		},
		Secondary: GeneratorProviderConfig{
			Provider:     v.GetString("generator.secondary.provider"),
			APIKey:       v.GetString("generator.secondary.api_key"),
			DefaultModel: v.GetString("generator.secondary.default_model"),
			TimeoutSecs:  v.GetInt("generator.secondary.timeout_secs"),
		},
	}

	cfg.Knowledge = KnowledgeConfig{
		Dir:        v.GetString("knowledge.dir"),
		MaxResults: v.GetInt("knowledge.max_results"),
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxRows:       v.GetInt("upload.max_rows"),
	}

	return cfg, nil
}
