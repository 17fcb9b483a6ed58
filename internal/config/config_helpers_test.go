package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "100", 100},
		{"negative", "-10", -10},
		{"zero", "0", 0},
		{"not a number", "lots", 42},
		{"float", "42.5", 42},
		{"empty", "", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CODINHO_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("CODINHO_TEST_INT", 42))
		})
	}

	t.Run("unset", func(t *testing.T) {
		assert.Equal(t, 42, getEnvAsInt("CODINHO_TEST_INT_UNSET", 42))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"90s", 90 * time.Second},
		{"1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"500ms", 500 * time.Millisecond},
		{"100", DefaultLedgerCacheTTL},
		{"soon", DefaultLedgerCacheTTL},
		{"", DefaultLedgerCacheTTL},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LEDGER_CACHE_TTL", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("LEDGER_CACHE_TTL", DefaultLedgerCacheTTL))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")
	assert.Nil(t, getEnvAsList("TRUSTED_PROXIES"))

	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1 ,,10.0.0.2,")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList("TRUSTED_PROXIES"))
}

func TestLoad_PoolAndCacheSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("AUTH_MODE", AuthModeNoop)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
		assert.Equal(t, DefaultLedgerCacheSize, cfg.LedgerCacheSize)
	})

	t.Run("custom", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("AUTH_MODE", AuthModeNoop)
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")
		t.Setenv("MAX_REQUEST_BODY_BYTES", "4096")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
		assert.Equal(t, int64(4096), cfg.MaxRequestBodyBytes)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("AUTH_MODE", AuthModeNoop)
		t.Setenv("DB_MAX_CONNS", "many")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("LEDGER_CACHE_SIZE", "big")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultLedgerCacheSize, cfg.LedgerCacheSize)
	})
}

func TestGetDBConnString_Custom(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db.internal", DBPort: "6543", DBName: "codinho"}
	assert.Equal(t, "postgres://u:p@db.internal:6543/codinho?sslmode=disable", cfg.GetDBConnString())
}
