package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/akanlabs/twi-translator/pkg/log"
)

// Config holds all application configuration.
// Values come from environment variables (a .env file is honored when
// present) with sensible defaults.
//
// Environment Variables:
// HTTP:
// - HOST: listen address (default: 0.0.0.0)
// - PORT: listen port (default: 7860)
//
// Dictionary:
// - DICT_PATH: path to the English→Twi CSV dictionary (default: data/dict.csv)
// - DICT_CHECK_CRON: cron expression for the periodic dictionary health
//   check; empty disables it (default: empty)
//
// UI:
// - UI_ENABLED: serve the web form (default: true)
// - STATIC_DIR: directory with the static UI files (default: web/static)
//
// System:
// - LOG_LEVEL: debug|info|warn|error|fatal (default: info)

type Config struct {
	HTTP HTTPConfig `json:"http"`

	Dict DictConfig `json:"dict"`

	UI UIConfig `json:"ui"`

	Translate TranslateConfig `json:"translate"`

	System SystemConfig `json:"system"`
}

// HTTPConfig holds the listen address for the API server.
type HTTPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Addr returns the host:port the server binds to.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DictConfig holds the dictionary file location and the optional health
// check schedule.
type DictConfig struct {
	Path      string `json:"path"`
	CheckCron string `json:"check_cron"`
}

// UIConfig controls the static web form.
type UIConfig struct {
	Enabled   bool   `json:"enabled"`
	StaticDir string `json:"static_dir"`
}

// TranslateConfig names the language pair. The pair is fixed for this app;
// it is configuration so the diagnostics trace can report it.
type TranslateConfig struct {
	SourceLanguage language.Tag `json:"source_language"`
	TargetLanguage language.Tag `json:"target_language"`
}

// SystemConfig holds process-level settings.
type SystemConfig struct {
	LogLevel string `json:"log_level"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// New loads a .env file when one exists and builds the Config from the
// environment.
func New(opts ...Option) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded configuration from .env")
	}
	return NewFromEnv(opts...)
}

// NewFromEnv creates a new Config instance with values from environment
// variables and options.
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		HTTP: HTTPConfig{
			Host: getEnvString("HOST", "0.0.0.0"),
			Port: getEnvInt("PORT", 7860),
		},
		Dict: DictConfig{
			Path:      getEnvString("DICT_PATH", "data/dict.csv"),
			CheckCron: getEnvString("DICT_CHECK_CRON", ""),
		},
		UI: UIConfig{
			Enabled:   getEnvBool("UI_ENABLED", true),
			StaticDir: getEnvString("STATIC_DIR", "web/static"),
		},
		Translate: TranslateConfig{
			SourceLanguage: language.English,
			TargetLanguage: language.MustParse("tw"),
		},
		System: SystemConfig{
			LogLevel: getEnvString("LOG_LEVEL", "info"),
		},
	}

	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("PORT %d is out of range", c.HTTP.Port)
	}
	if c.Dict.Path == "" {
		return fmt.Errorf("DICT_PATH is required")
	}
	if c.UI.Enabled && c.UI.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR is required when UI_ENABLED is set")
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean value from environment variables with default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
