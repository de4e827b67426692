package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Admin    AdminConfig    `toml:"admin"`
	Profile  ProfileConfig  `toml:"profile"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
	CORS     CORSConfig     `toml:"cors"`
}

type AppConfig struct {
	Name                     string `toml:"name"`
	Env                      string `toml:"env"`
	Host                     string `toml:"host"`
	Port                     int    `toml:"port"`
	GinMode                  string `toml:"gin_mode"`
	StaticDir                string `toml:"static_dir"`
	MaxBodyBytes             int64  `toml:"max_body_bytes"`
	ReadHeaderTimeoutSeconds int    `toml:"read_header_timeout_seconds"`
}

type AdminConfig struct {
	Password string `toml:"password"`
}

type ProfileConfig struct {
	DefaultName string `toml:"default_name"`
	DefaultBio  string `toml:"default_bio"`
}

type DatabaseConfig struct {
	Driver       string `toml:"driver"`
	URL          string `toml:"url"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	LogLevel     string `toml:"log_level"`
}

type RedisConfig struct {
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	TTLSeconds      int    `toml:"ttl_seconds"`
	DirtyTTLSeconds int    `toml:"dirty_ttl_seconds"`
}

type RabbitMQConfig struct {
	URL        string `toml:"url"`
	EventQueue string `toml:"event_queue"`
}

type CORSConfig struct {
	AllowOrigins string `toml:"allow_origins"`
}

// Configured reports whether a database url was supplied.
func (c DatabaseConfig) Configured() bool {
	return strings.TrimSpace(c.URL) != ""
}

// URLPrefix is the redacted form of the url reported by the health endpoint.
func (c DatabaseConfig) URLPrefix() string {
	if !c.Configured() {
		return "none"
	}
	if len(c.URL) <= 15 {
		return c.URL + "..."
	}
	return c.URL[:15] + "..."
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

func (c RabbitMQConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	envFile := getEnv("ENV_FILE", ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file failed: %w", err)
		}
	}

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.App.MaxBodyBytes <= 0 {
		return fmt.Errorf("app.max_body_bytes must be positive, got %d", c.App.MaxBodyBytes)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:                     "personal-space",
			Env:                      "dev",
			Host:                     "0.0.0.0",
			Port:                     3000,
			GinMode:                  "release",
			StaticDir:                "Public",
			MaxBodyBytes:             10 << 20,
			ReadHeaderTimeoutSeconds: 5,
		},
		Profile: ProfileConfig{
			DefaultName: "Ahmed Gamal",
			DefaultBio:  "Welcome to my space",
		},
		Database: DatabaseConfig{
			Driver:       DriverPostgres,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			LogLevel:     "warn",
		},
		Redis: RedisConfig{
			TTLSeconds:      60,
			DirtyTTLSeconds: 5,
		},
		RabbitMQ: RabbitMQConfig{
			EventQueue: "content.events",
		},
		CORS: CORSConfig{
			AllowOrigins: "*",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("PORT", cfg.App.Port)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)
	cfg.App.StaticDir = getEnv("STATIC_DIR", cfg.App.StaticDir)
	cfg.App.MaxBodyBytes = int64(getEnvAsInt("MAX_BODY_BYTES", int(cfg.App.MaxBodyBytes)))

	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", cfg.Admin.Password)

	cfg.Profile.DefaultName = getEnv("PROFILE_DEFAULT_NAME", cfg.Profile.DefaultName)
	cfg.Profile.DefaultBio = getEnv("PROFILE_DEFAULT_BIO", cfg.Profile.DefaultBio)

	cfg.Database.Driver = strings.ToLower(getEnv("DATABASE_DRIVER", cfg.Database.Driver))
	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.MaxOpenConns = getEnvAsInt("DATABASE_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.MaxIdleConns = getEnvAsInt("DATABASE_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	cfg.Database.LogLevel = getEnv("DATABASE_LOG_LEVEL", cfg.Database.LogLevel)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.TTLSeconds = getEnvAsInt("REDIS_TTL_SECONDS", cfg.Redis.TTLSeconds)
	cfg.Redis.DirtyTTLSeconds = getEnvAsInt("REDIS_DIRTY_TTL_SECONDS", cfg.Redis.DirtyTTLSeconds)

	cfg.RabbitMQ.URL = getEnv("RABBITMQ_URL", cfg.RabbitMQ.URL)
	cfg.RabbitMQ.EventQueue = getEnv("RABBITMQ_EVENT_QUEUE", cfg.RabbitMQ.EventQueue)

	cfg.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", cfg.CORS.AllowOrigins)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
