package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devJWTSecret = "dev-only-insecure-secret"

type Config struct {
	Port     string `mapstructure:"port"`
	GinMode  string `mapstructure:"gin_mode"`
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is "json" or "console".
	LogFormat string `mapstructure:"log_format"`

	DatabaseURL string `mapstructure:"database_url"`
	DBHost      string `mapstructure:"db_host"`
	DBPort      string `mapstructure:"db_port"`
	DBUser      string `mapstructure:"db_user"`
	DBPassword  string `mapstructure:"db_password"`
	DBName      string `mapstructure:"db_name"`
	DBSSLMode   string `mapstructure:"db_sslmode"`

	// AuthJWTSecret verifies access tokens issued by the identity service.
	AuthJWTSecret string `mapstructure:"auth_jwt_secret"`
	CORSOrigins   string `mapstructure:"cors_origins"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	SeedOnStart bool `mapstructure:"seed_on_start"`
}

var defaults = map[string]any{
	"port":            "8080",
	"gin_mode":        "debug",
	"log_level":       "info",
	"log_format":      "json",
	"database_url":    "",
	"db_host":         "localhost",
	"db_port":         "5432",
	"db_user":         "postgres",
	"db_password":     "",
	"db_name":         "contracting_cms",
	"db_sslmode":      "disable",
	"auth_jwt_secret": "",
	"cors_origins":    "http://localhost:3000",
	"redis_addr":      "",
	"redis_password":  "",
	"redis_db":        0,
	"seed_on_start":   false,
}

// Load reads envFile into the process environment (a missing file is fine)
// and then decodes environment variables over the defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate requires a real token secret in release mode and falls back to a
// development secret otherwise.
func (c *Config) Validate() error {
	if c.AuthJWTSecret == "" {
		if c.GinMode == "release" {
			return errors.New("AUTH_JWT_SECRET is required in release mode")
		}
		c.AuthJWTSecret = devJWTSecret
	}
	if c.DatabaseURL == "" && c.DBHost == "" {
		return errors.New("either DATABASE_URL or DB_HOST must be set")
	}
	return nil
}

// DSN prefers DATABASE_URL and otherwise builds a postgres URL from the parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// Origins splits CORS_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
