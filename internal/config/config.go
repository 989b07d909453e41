package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment variables
const (
	EnvSlackBotToken      = "SLACK_BOT_TOKEN"
	EnvSlackSigningSecret = "SLACK_SIGNING_SECRET"
	EnvDatabasePath       = "DATABASE_PATH"
	EnvPort               = "PORT"
	EnvPublicBaseURL      = "PUBLIC_BASE_URL"
	EnvDefaultLocale      = "DEFAULT_LOCALE"
	EnvLockTTL            = "LOCK_TTL"
	EnvFanoutConcurrency  = "FANOUT_CONCURRENCY"
	EnvVerbose            = "BOT_VERBOSE"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	// PublicBaseURL is where Slack fetches rendered maps from; empty disables images
	PublicBaseURL     string
	DefaultLocale     string
	LockTTL           time.Duration
	FanoutConcurrency int
	Verbose           bool
}

// Load reads the configuration from the environment. Call godotenv.Load first
// to pick up a local .env file.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(EnvDatabasePath, "./maprotation.db")
	v.SetDefault(EnvPort, "3000")
	v.SetDefault(EnvDefaultLocale, "en")
	v.SetDefault(EnvLockTTL, 15*time.Second)
	v.SetDefault(EnvFanoutConcurrency, 4)
	v.SetDefault(EnvVerbose, false)

	return &Config{
		SlackBotToken:      v.GetString(EnvSlackBotToken),
		SlackSigningSecret: v.GetString(EnvSlackSigningSecret),
		DatabasePath:       v.GetString(EnvDatabasePath),
		Port:               v.GetString(EnvPort),
		PublicBaseURL:      strings.TrimRight(v.GetString(EnvPublicBaseURL), "/"),
		DefaultLocale:      v.GetString(EnvDefaultLocale),
		LockTTL:            v.GetDuration(EnvLockTTL),
		FanoutConcurrency:  v.GetInt(EnvFanoutConcurrency),
		Verbose:            v.GetBool(EnvVerbose),
	}
}

// Validate reports every missing credential and out of range value at once
func (c *Config) Validate() error {
	var errs []error
	if c.SlackBotToken == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvSlackBotToken))
	}
	if c.SlackSigningSecret == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvSlackSigningSecret))
	}
	if c.LockTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvLockTTL))
	}
	if c.FanoutConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvFanoutConcurrency))
	}
	return errors.Join(errs...)
}

// ImagesEnabled reports whether rendered maps can be served to Slack
func (c *Config) ImagesEnabled() bool {
	return c.PublicBaseURL != ""
}
