package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	Env     string `yaml:"env"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	TokenTTL string `yaml:"token_ttl"`
}

type MatchConfig struct {
	TickInterval string `yaml:"tick_interval"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Match    MatchConfig    `yaml:"match"`
}

type Config struct {
	Port          string
	Env           string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	TokenTTL      time.Duration
	MatchTick     time.Duration
}

// IsProduction reports whether the service runs with production hardening
// (Secure cookies, no diagnostic error details).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides. The file
// is optional so containerized deployments can run on env vars alone.
func Load() (*Config, error) {
	file, err := loadConfigFile("config/config.yml")
	if err != nil {
		file = &ConfigFile{}
	}

	cfg := &Config{
		Port:          env("PORT", orDefault(strconv.Itoa(file.App.Port), "8080")),
		Env:           env("APP_ENV", orDefault(file.App.Env, "development")),
		GinMode:       env("GIN_MODE", orDefault(file.App.GinMode, "release")),
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", orDefault(file.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       file.Redis.DB,
		JWTSecret:     env("JWT_SECRET", file.JWT.Secret),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	cfg.TokenTTL, err = parseDuration(env("TOKEN_TTL", file.JWT.TokenTTL), 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid token TTL: %w", err)
	}

	cfg.MatchTick, err = parseDuration(env("MATCH_TICK", file.Match.TickInterval), 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid match tick interval: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is not configured")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func orDefault(v, def string) string {
	if v == "" || v == "0" {
		return def
	}
	return v
}
