package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// StoreConfig selects the preset store driver: "sqlite" (default, Path
// required) or "postgres" (Database required).
type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	Path     string         `yaml:"path"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type DefaultsConfig struct {
	Unit string `yaml:"unit"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix W2P_ and underscore-separated paths:
//
//	W2P_SERVER_HOST, W2P_SERVER_PORT,
//	W2P_STORE_DRIVER, W2P_STORE_PATH,
//	W2P_DB_HOST, W2P_DB_PORT, W2P_DB_NAME,
//	W2P_DB_USER, W2P_DB_PASSWORD, W2P_DB_SSLMODE,
//	W2P_AUTH_API_KEY, W2P_DEFAULT_UNIT
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("W2P_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("W2P_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("W2P_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("W2P_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("W2P_DB_HOST"); v != "" {
		cfg.Store.Database.Host = v
	}
	if v := os.Getenv("W2P_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Store.Database.Port = port
		}
	}
	if v := os.Getenv("W2P_DB_NAME"); v != "" {
		cfg.Store.Database.Name = v
	}
	if v := os.Getenv("W2P_DB_USER"); v != "" {
		cfg.Store.Database.User = v
	}
	if v := os.Getenv("W2P_DB_PASSWORD"); v != "" {
		cfg.Store.Database.Password = v
	}
	if v := os.Getenv("W2P_DB_SSLMODE"); v != "" {
		cfg.Store.Database.SSLMode = v
	}
	if v := os.Getenv("W2P_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("W2P_DEFAULT_UNIT"); v != "" {
		cfg.Defaults.Unit = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "sqlite"
	}
	if cfg.Store.Driver == "sqlite" && cfg.Store.Path == "" {
		cfg.Store.Path = "presets.db"
	}
	if cfg.Defaults.Unit == "" {
		cfg.Defaults.Unit = "lbs"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.Database.Host == "" {
			return fmt.Errorf("store.database.host is required")
		}
		if c.Store.Database.Port == 0 {
			return fmt.Errorf("store.database.port is required")
		}
		if c.Store.Database.Name == "" {
			return fmt.Errorf("store.database.name is required")
		}
		if c.Store.Database.User == "" {
			return fmt.Errorf("store.database.user is required")
		}
	default:
		return fmt.Errorf("store.driver must be sqlite or postgres, got %q", c.Store.Driver)
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Defaults.Unit != "lbs" && c.Defaults.Unit != "kg" {
		return fmt.Errorf("defaults.unit must be lbs or kg, got %q", c.Defaults.Unit)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
