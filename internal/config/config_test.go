package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "capsule_db", cfg.DB.Name)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.PoolSize)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.MaxAge.Duration())
	assert.False(t, cfg.Session.SecureCookies)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":            "8080",
		"DB_DRIVER":       "postgres",
		"DB_HOST":         "db.internal",
		"DB_POOL_SIZE":    "25",
		"SESSION_MAX_AGE": "1h",
		"SECURE_COOKIES":  "true",
		"SESSION_STORE":   "cookie",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 25, cfg.DB.PoolSize)
	assert.Equal(t, time.Hour, cfg.Session.MaxAge.Duration())
	assert.True(t, cfg.Session.SecureCookies)
	assert.Equal(t, "cookie", cfg.Session.Store)
}

func TestLoadFrom_MaxAgeMilliseconds(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_MAX_AGE": "1800000",
	}))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.Session.MaxAge.Duration())
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":   {"DB_DRIVER": "oracle"},
		"unknown store":    {"SESSION_STORE": "redis"},
		"zero max age":     {"SESSION_MAX_AGE": "0"},
		"garbage max age":  {"SESSION_MAX_AGE": "soon"},
		"zero pool":        {"DB_POOL_SIZE": "0"},
		"non-numeric port": {"PORT": "http"},
		"unknown gin mode": {"GIN_MODE": "verbose"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
