package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Config holds the application configuration, sourced from environment
// variables so each deployment can override it without a rebuild.
type Config struct {
	Port string

	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	// Secret used to sign session tokens. Required; the server refuses to
	// start without it rather than issuing unverifiable tokens.
	AccessTokenSecret string

	// "production" tightens cookie attributes (Secure, SameSite=None).
	Env string

	AllowedOrigins []string
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getenv("PORT", "5000"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBUser:            getenv("DB_USER", "postgres"),
		DBPass:            os.Getenv("DB_PASS"),
		DBName:            getenv("DB_NAME", "jobhub"),
		DBPort:            getenv("DB_PORT", "5432"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		Env:               getenv("APP_ENV", "development"),
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}

	return cfg, nil
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
