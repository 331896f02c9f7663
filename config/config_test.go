package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwiprasetyo/auth-session-service/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg := config.Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/auth", cfg.DBURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 10080, cfg.RefreshExpiryMin)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "1440")
	t.Setenv("MAX_LOGIN_ATTEMPTS", "3")

	cfg := config.Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.AccessExpiryMin)
	assert.Equal(t, 1440, cfg.RefreshExpiryMin)
	assert.Equal(t, 3, cfg.MaxLoginAttempts)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "non-numeric access expiry",
			key:   "ACCESS_TOKEN_EXPIRY",
			value: "fifteen",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 15, cfg.AccessExpiryMin)
			},
		},
		{
			name:  "non-numeric refresh expiry",
			key:   "REFRESH_TOKEN_EXPIRY",
			value: "soon",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 10080, cfg.RefreshExpiryMin)
			},
		},
		{
			name:  "non-numeric max attempts",
			key:   "MAX_LOGIN_ATTEMPTS",
			value: "many",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 5, cfg.MaxLoginAttempts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			cfg := config.Load()
			tt.check(t, cfg)
		})
	}
}
