package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Redis Config
const DEFAULT_REDIS_DB_ADDRESS = "redis:6379"
const DEFAULT_REDIS_DB = 0
const DEFAULT_REDIS_BREAKER_FAILURES = 5
const DEFAULT_REDIS_BREAKER_TIMEOUT = 30 * time.Second

// HTTP server config
const DEFAULT_SERVER_ADDR = ":8080"
const DEFAULT_SHUTDOWN_TIMEOUT = 5 * time.Second
const DEFAULT_RATE_LIMIT_PER_MINUTE = 600

// Snapshot refresher config
const DEFAULT_REFRESHER_INTERVAL = 5 * time.Second

// The catalog is in Chennai, so hours of day are Chennai hours unless overridden.
const DEFAULT_TIMEZONE = "Asia/Kolkata"

// ENV_PREFIX scopes environment overrides, e.g. CROWD_REDIS__ADDR=localhost:6379.
const ENV_PREFIX = "CROWD_"

// CONFIG_PATH_ENV overrides the YAML config file location.
const CONFIG_PATH_ENV = "CONFIG_PATH"

var defaultConfigPaths = []string{"config.yaml", "config.yml"}

// sliceConfigPaths may arrive from the environment as comma separated strings.
var sliceConfigPaths = []string{"server.cors_origins"}

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Redis     RedisConfig     `koanf:"redis"`
	Refresher RefresherConfig `koanf:"refresher"`
	Simulator SimulatorConfig `koanf:"simulator"`
	Logging   LoggingConfig   `koanf:"logging"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `koanf:"cors_origins"`

	// RateLimitPerMinute caps requests per client IP. Zero disables it.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute" validate:"gte=0"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr" validate:"required_unless=Mock true"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db" validate:"gte=0"`
	// Mock swaps Redis for the in-memory client.
	Mock bool `koanf:"mock"`

	// BreakerFailures consecutive errors open the circuit for BreakerTimeout.
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"gt=0"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
}

type RefresherConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval" validate:"gt=0"`
}

type SimulatorConfig struct {
	Timezone string `koanf:"timezone" validate:"required"`
	// CatalogPath optionally replaces the compiled-in catalog with a JSON file.
	CatalogPath string `koanf:"catalog_path"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:               DEFAULT_SERVER_ADDR,
			ShutdownTimeout:    DEFAULT_SHUTDOWN_TIMEOUT,
			CORSOrigins:        []string{"*"},
			RateLimitPerMinute: DEFAULT_RATE_LIMIT_PER_MINUTE,
		},
		Redis: RedisConfig{
			Addr:            DEFAULT_REDIS_DB_ADDRESS,
			DB:              DEFAULT_REDIS_DB,
			BreakerFailures: DEFAULT_REDIS_BREAKER_FAILURES,
			BreakerTimeout:  DEFAULT_REDIS_BREAKER_TIMEOUT,
		},
		Refresher: RefresherConfig{
			Enabled:  true,
			Interval: DEFAULT_REFRESHER_INTERVAL,
		},
		Simulator: SimulatorConfig{
			Timezone: DEFAULT_TIMEZONE,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers struct defaults, an optional YAML file and CROWD_* environment
// variables (after reading an optional .env), then validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(ENV_PREFIX, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks struct constraints and that the time zone resolves.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the simulator time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Simulator.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid simulator timezone %q: %w", c.Simulator.Timezone, err)
	}
	return loc, nil
}

// envKey maps CROWD_SERVER__SHUTDOWN_TIMEOUT to server.shutdown_timeout.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, ENV_PREFIX))
	return strings.ReplaceAll(s, "__", ".")
}

func findConfigFile() string {
	if p := os.Getenv(CONFIG_PATH_ENV); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func splitSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// ResolvePath anchors a relative path at BaseDir.
func ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(BaseDir(), path)
}
