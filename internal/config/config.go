package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "hearth.yaml"

type Config struct {
	Household  string           `yaml:"household"`
	Version    int              `yaml:"version"`
	Storage    StorageConfig    `yaml:"storage"`
	Assistant  AssistantConfig  `yaml:"assistant"`
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
	Vault      VaultConfig      `yaml:"vault"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Key    string `yaml:"key"`
}

type AssistantConfig struct {
	Model     string        `yaml:"model"`
	APIKeyEnv string        `yaml:"api_key_env"`
	BaseURL   string        `yaml:"base_url"`
	MaxTokens int64         `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

// APIKey reads the key from the configured environment variable.
func (a AssistantConfig) APIKey() string {
	return strings.TrimSpace(os.Getenv(a.APIKeyEnv))
}

type ScoreboardConfig struct {
	Team         string        `yaml:"team"`
	PollInterval time.Duration `yaml:"poll_interval"`
	GameDuration time.Duration `yaml:"game_duration"`
}

// VaultConfig.Passphrase gates the vault screen. It is a plain comparison
// and protects nothing.
type VaultConfig struct {
	Passphrase string `yaml:"passphrase"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var storageDrivers = map[string]struct{}{
	"sqlite":   {},
	"postgres": {},
	"file":     {},
	"memory":   {},
}

// Default is the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Household: "Gram's House",
		Version:   1,
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "sqlite://./hearth.db",
			Key:    "hearthAppData",
		},
		Assistant: AssistantConfig{
			Model:     "claude-sonnet-4-5",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			MaxTokens: 1024,
			Timeout:   60 * time.Second,
		},
		Scoreboard: ScoreboardConfig{
			Team:         "Montreal Canadiens",
			PollInterval: time.Minute,
			GameDuration: 3 * time.Hour,
		},
		Vault:  VaultConfig{Passphrase: "familyfirst"},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults, then applies .env and environment
// overrides. A missing file at the default path is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyEnv(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HEARTH_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("HEARTH_STORAGE_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("HEARTH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HEARTH_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Household) == "" {
		return fmt.Errorf("household name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if _, ok := storageDrivers[driver]; !ok {
		return fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
	cfg.Storage.Driver = driver
	if driver != "memory" && strings.TrimSpace(cfg.Storage.DSN) == "" {
		return fmt.Errorf("storage dsn is required for driver %s", driver)
	}
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		return fmt.Errorf("storage key is required")
	}

	if strings.TrimSpace(cfg.Assistant.Model) == "" {
		return fmt.Errorf("assistant model is required")
	}
	if cfg.Assistant.MaxTokens <= 0 {
		return fmt.Errorf("assistant max_tokens must be positive")
	}
	if cfg.Assistant.Timeout <= 0 {
		return fmt.Errorf("assistant timeout must be positive")
	}

	if cfg.Scoreboard.PollInterval <= 0 {
		return fmt.Errorf("scoreboard poll_interval must be positive")
	}
	if cfg.Scoreboard.GameDuration <= 0 {
		return fmt.Errorf("scoreboard game_duration must be positive")
	}
	return nil
}
