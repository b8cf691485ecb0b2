// Package config loads the API configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageNone = "none"
	StorageGCS  = "gcs"
	StorageR2   = "r2"
)

// ErrInvalidConfig wraps every startup validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env            string   `env:"APP_ENV"`
	Address        string   `env:"SERVER_ADDRESS"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	LogLevel       string   `env:"LOG_LEVEL"`
	FrontendURL    string   `env:"FRONTEND_URL"`

	Mongo     Mongo
	Auth      Auth
	SMTP      SMTP
	Admin     Admin
	Storage   Storage
	RateLimit RateLimit
	Jobs      Jobs
}

type Mongo struct {
	URI      string        `env:"MONGODB_URI"`
	Database string        `env:"DATABASE_NAME"`
	Timeout  time.Duration `env:"MONGODB_TIMEOUT"`
}

// Auth holds the two signing secrets. They must differ so a reset token can
// never be replayed as a session token.
type Auth struct {
	JWTSecret        string `env:"JWT_SECRET"`
	ResetTokenSecret string `env:"RESET_TOKEN_SECRET"`
}

type SMTP struct {
	Host         string        `env:"SMTP_HOST"`
	Port         int           `env:"SMTP_PORT"`
	Username     string        `env:"SMTP_USERNAME"`
	Password     string        `env:"SMTP_PASSWORD"`
	From         string        `env:"SMTP_FROM"`
	Timeout      time.Duration `env:"SMTP_TIMEOUT"`
	ContactEmail string        `env:"CONTACT_EMAIL"`
}

type Admin struct {
	Email    string `env:"ADMIN_EMAIL"`
	Name     string `env:"ADMIN_NAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

type Storage struct {
	Driver            string   `env:"STORAGE_DRIVER"`
	GCSBucket         string   `env:"GCS_BUCKET"`
	CredentialsFile   string   `env:"CREDENTIALS_FILE_LOCATION"`
	R2Bucket          string   `env:"R2_BUCKET"`
	R2AccessKeyID     string   `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string   `env:"R2_SECRET_ACCESS_KEY"`
	R2Endpoint        string   `env:"R2_ENDPOINT"`
	R2PublicDomain    string   `env:"R2_PUBLIC_DOMAIN"`
	MaxUploadSizeMB   int      `env:"MAX_UPLOAD_SIZE_MB"`
	AllowedExtensions []string `env:"ALLOWED_FILE_EXTENSIONS" envSeparator:","`
	AllowedMimeTypes  []string `env:"ALLOWED_FILE_MIME_TYPES" envSeparator:","`
}

// RateLimit is expressed as requests allowed per Window, per client address.
type RateLimit struct {
	Window         time.Duration `env:"RATE_LIMIT_WINDOW"`
	Register       int           `env:"RATE_LIMIT_REGISTER"`
	Login          int           `env:"RATE_LIMIT_LOGIN"`
	ForgotPassword int           `env:"RATE_LIMIT_FORGOT_PASSWORD"`
	Contact        int           `env:"RATE_LIMIT_CONTACT"`
}

type Jobs struct {
	CodeSweepSchedule string `env:"OTP_SWEEP_SCHEDULE"`
}

// Defaults holds the values used for every field the environment leaves empty.
func Defaults() Config {
	return Config{
		Env:         EnvDevelopment,
		Address:     ":8080",
		LogLevel:    "info",
		FrontendURL: "http://localhost:5173",
		Mongo: Mongo{
			Timeout: 10 * time.Second,
		},
		SMTP: SMTP{
			Port:    587,
			Timeout: 15 * time.Second,
		},
		Admin: Admin{
			Name: "Admin",
		},
		Storage: Storage{
			Driver:            StorageNone,
			MaxUploadSizeMB:   5,
			AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".webp", ".gif"},
			AllowedMimeTypes:  []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		},
		RateLimit: RateLimit{
			Window:         15 * time.Minute,
			Register:       10,
			Login:          20,
			ForgotPassword: 5,
			Contact:        5,
		},
		Jobs: Jobs{
			CodeSweepSchedule: "@every 5m",
		},
	}
}

// Load reads an optional .env file, parses the environment and fills the
// gaps from Defaults. The result is validated; any error is fatal at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a Config from the current environment without validating it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("error merging default configs: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.Auth.JWTSecret == "":
		return fmt.Errorf("%w: JWT_SECRET is not set", ErrInvalidConfig)
	case c.Auth.ResetTokenSecret == "":
		return fmt.Errorf("%w: RESET_TOKEN_SECRET is not set", ErrInvalidConfig)
	case c.Auth.JWTSecret == c.Auth.ResetTokenSecret:
		return fmt.Errorf("%w: JWT_SECRET and RESET_TOKEN_SECRET must differ", ErrInvalidConfig)
	case c.Mongo.URI == "":
		return fmt.Errorf("%w: MONGODB_URI is not set", ErrInvalidConfig)
	case c.Mongo.Database == "":
		return fmt.Errorf("%w: DATABASE_NAME is not set", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageNone:
	case StorageGCS:
		if c.Storage.GCSBucket == "" {
			return fmt.Errorf("%w: GCS_BUCKET is required for the gcs storage driver", ErrInvalidConfig)
		}
	case StorageR2:
		s := c.Storage
		if s.R2Bucket == "" || s.R2AccessKeyID == "" || s.R2SecretAccessKey == "" || s.R2Endpoint == "" {
			return fmt.Errorf("%w: missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.SMTP.Host != "" && c.SMTP.From == "" {
		return fmt.Errorf("%w: SMTP_FROM is required when SMTP_HOST is set", ErrInvalidConfig)
	}
	return nil
}
