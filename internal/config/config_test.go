package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvSlackBotToken, "xoxb-test")
	t.Setenv(EnvSlackSigningSecret, "secret")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "./maprotation.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, 15*time.Second, cfg.LockTTL)
	assert.Equal(t, 4, cfg.FanoutConcurrency)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ImagesEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvSlackBotToken, "xoxb-test")
	t.Setenv(EnvSlackSigningSecret, "secret")
	t.Setenv(EnvPublicBaseURL, "https://bot.example.com/")
	t.Setenv(EnvLockTTL, "30s")
	t.Setenv(EnvFanoutConcurrency, "8")
	t.Setenv(EnvDefaultLocale, "es")
	t.Setenv(EnvVerbose, "true")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://bot.example.com", cfg.PublicBaseURL)
	assert.True(t, cfg.ImagesEnabled())
	assert.Equal(t, 30*time.Second, cfg.LockTTL)
	assert.Equal(t, 8, cfg.FanoutConcurrency)
	assert.Equal(t, "es", cfg.DefaultLocale)
	assert.True(t, cfg.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr []string
	}{
		{
			name:    "Should require slack credentials",
			cfg:     Config{LockTTL: time.Second, FanoutConcurrency: 1},
			wantErr: []string{EnvSlackBotToken, EnvSlackSigningSecret},
		},
		{
			name:    "Should reject non positive limits",
			cfg:     Config{SlackBotToken: "x", SlackSigningSecret: "y"},
			wantErr: []string{EnvLockTTL, EnvFanoutConcurrency},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}
