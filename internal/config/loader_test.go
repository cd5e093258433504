package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	for _, k := range []string{"JWT_SECRET", "AUTH_JWT_SECRET", "POSTGRES_URL", "DATABASE_POSTGRES_URL", "PORT", "HTTP_PORT"} {
		t.Setenv(k, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  postgres:
    url: postgres://localhost/match2b
auth:
  jwt_secret: s3cret
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "match2b", cfg.App.Name)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, CacheMemory, cfg.Cache.Driver)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 6, cfg.Matching.Limit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "postgres://localhost/match2b", cfg.Database.Postgres.GetDSN())
}

func TestLoadFromFile_EnvPlaceholderAndOverride(t *testing.T) {
	path := writeConfig(t, `
database:
  postgres:
    host: db.internal
    user: app
    password: pw
    database: match2b
auth:
  jwt_secret: ${TEST_MATCH2B_SECRET}
cache:
  ttl: 1m
`)
	t.Setenv("TEST_MATCH2B_SECRET", "from-env")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("PORT", "9090")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t,
		"host=db.internal port=5432 user=app password=pw dbname=match2b sslmode=disable",
		cfg.Database.Postgres.GetDSN())
}

func TestLoadFromFile_LiteralDollarIsKept(t *testing.T) {
	path := writeConfig(t, `
database:
  postgres:
    host: db.internal
    user: app
    password: pa$word
    database: match2b
auth:
  jwt_secret: "$ecret-${TEST_MATCH2B_SUFFIX}"
`)
	t.Setenv("TEST_MATCH2B_SUFFIX", "v2")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "pa$word", cfg.Database.Postgres.Password)
	assert.Equal(t, "$ecret-v2", cfg.Auth.JWTSecret)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing database", "auth:\n  jwt_secret: x\n"},
		{"missing secret", "database:\n  postgres:\n    url: postgres://x\n"},
		{"unset placeholder", "database:\n  postgres:\n    url: postgres://x\nauth:\n  jwt_secret: ${TEST_MATCH2B_UNSET_VAR}\n"},
		{"redis without address", "database:\n  postgres:\n    url: postgres://x\nauth:\n  jwt_secret: x\ncache:\n  driver: redis\n"},
		{"unknown cache driver", "database:\n  postgres:\n    url: postgres://x\nauth:\n  jwt_secret: x\ncache:\n  driver: memcached\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
