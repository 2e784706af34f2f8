package config

import (
	"errors"
	"fmt"
	"os"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	development environment = "development"
)

const defaultPort = "3001"

type Config struct {
	port            string
	databaseURL     string
	websitePassword string
	sentryDSN       string
	env             environment
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) DatabaseURL() string {
	return c.databaseURL
}

func (c *Config) WebsitePassword() string {
	return c.websitePassword
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{env: %s, port: %s, ...}", string(c.env), c.port)
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("GRIDLINE_ENVIRONMENT")
	if !ok {
		return missingKey("GRIDLINE_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "development":
		env = development
	default:
		return Config{}, fmt.Errorf("%w: GRIDLINE_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	databaseURL := os.Getenv("DATABASE_URL")
	websitePassword := os.Getenv("WEBSITE_PASSWORD")
	sentryDSN := os.Getenv("SENTRY_DSN")

	if env == production {
		if databaseURL == "" {
			return missingKey("DATABASE_URL")
		}
		if websitePassword == "" {
			return missingKey("WEBSITE_PASSWORD")
		}
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	return Config{
		port:            port,
		databaseURL:     databaseURL,
		websitePassword: websitePassword,
		sentryDSN:       sentryDSN,
		env:             env,
	}, nil
}
