// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log struct {
		Level  string `json:"level" yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
		Format string `json:"format" yaml:"format" toml:"format" validate:"oneof=json text"`
	} `json:"log" yaml:"log" toml:"log"`
	Parser struct {
		IdentifierWhitelist string `json:"identifier_whitelist" yaml:"identifier_whitelist" toml:"identifier_whitelist"`
		MaxSourceBytes      int64  `json:"max_source_bytes" yaml:"max_source_bytes" toml:"max_source_bytes" validate:"gt=0"`
	} `json:"parser" yaml:"parser" toml:"parser"`
	Server struct {
		Port         string        `json:"port" yaml:"port" toml:"port" validate:"required,numeric"`
		ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout" toml:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" toml:"write_timeout"`
	} `json:"server" yaml:"server" toml:"server"`
}

func Load() *Config {
	cfg := &Config{}

	// Logging configuration
	cfg.Log.Level = getEnv("NARSER_LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("NARSER_LOG_FORMAT", "text")

	// Parser configuration
	cfg.Parser.IdentifierWhitelist = getEnv("NARSER_IDENTIFIER_WHITELIST", "-_")
	cfg.Parser.MaxSourceBytes = getEnvInt("NARSER_MAX_SOURCE_BYTES", 1<<20)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	return cfg
}

// LoadFile loads the environment configuration and overlays the YAML or
// TOML file at path, chosen by extension. The result is validated.
func LoadFile(path string) (*Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, cfg.Validate()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
