package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT secret not configured")

// Config is the service configuration read from the environment
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE"`

	Log      Log
	JWT      JWT
	CORS     CORS
	Database Database
	AWS      AWS
	Build    Build
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	JSON  bool   `env:"LOG_JSON" envDefault:"true"`
}

type JWT struct {
	Secret            string `env:"JWT_SECRET"`
	SecretARN         string `env:"JWT_SECRET_ARN"`
	ExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"30"`
}

// TTL returns the session token lifetime
func (j JWT) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type CORS struct {
	Origin string `env:"CORS_ORIGIN"`
}

type Database struct {
	URL        string `env:"DATABASE_URL"`
	Host       string `env:"DB_HOST"`
	Port       int    `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"assetflow"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"assetflow"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"prefer"`
	MaxRetries int    `env:"DB_MAX_RETRIES" envDefault:"5"`
}

// Enabled reports whether a Postgres catalog store is configured
func (d Database) Enabled() bool {
	return d.URL != "" || d.Host != ""
}

// DSN prefers DATABASE_URL and otherwise composes one from the DB_* values
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}
	return u.String()
}

type AWS struct {
	Region         string `env:"AWS_REGION" envDefault:"eu-central-1"`
	NotifyTopicARN string `env:"NOTIFY_TOPIC_ARN"`
}

// Enabled reports whether any AWS-backed component is configured
func (a AWS) Enabled(j JWT) bool {
	return a.NotifyTopicARN != "" || j.SecretARN != ""
}

type Build struct {
	GitSHA    string `env:"GIT_SHA" envDefault:"dev"`
	BuildTime string `env:"BUILD_TIME"`
}

// Load reads an optional .env file and then the environment
func Load(paths ...string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: load .env: %w", op, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate checks settings that can only be checked after secrets are resolved
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}
