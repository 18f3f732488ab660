package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"FINVOICE_APP_NAME":          os.Getenv("FINVOICE_APP_NAME"),
		"FINVOICE_APP_ENV":           os.Getenv("FINVOICE_APP_ENV"),
		"FINVOICE_APP_PORT":          os.Getenv("FINVOICE_APP_PORT"),
		"FINVOICE_DATABASE_HOST":     os.Getenv("FINVOICE_DATABASE_HOST"),
		"FINVOICE_DATABASE_PORT":     os.Getenv("FINVOICE_DATABASE_PORT"),
		"FINVOICE_DATABASE_PASSWORD": os.Getenv("FINVOICE_DATABASE_PASSWORD"),
		"FINVOICE_JWT_SECRET":        os.Getenv("FINVOICE_JWT_SECRET"),
		"FINVOICE_REDIS_HOST":        os.Getenv("FINVOICE_REDIS_HOST"),
		"FINVOICE_SMTP_HOST":         os.Getenv("FINVOICE_SMTP_HOST"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "finvoice", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "finvoice", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, "finvoice", cfg.JWT.Issuer)
		assert.Positive(t, cfg.JWT.TokenExpiration)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 587, cfg.SMTP.Port)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("FINVOICE_APP_PORT", "9000")
		os.Setenv("FINVOICE_DATABASE_HOST", "db.internal")
		os.Setenv("FINVOICE_DATABASE_PASSWORD", "hunter2")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "hunter2", cfg.Database.Password)
	})

	t.Run("production without jwt secret fails validation", func(t *testing.T) {
		clearEnv()
		os.Setenv("FINVOICE_APP_ENV", "production")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production with jwt secret passes", func(t *testing.T) {
		clearEnv()
		os.Setenv("FINVOICE_APP_ENV", "production")
		os.Setenv("FINVOICE_JWT_SECRET", "a-real-secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.App.IsProduction())
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "finvoice",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=finvoice sslmode=disable", dsn)
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", cfg.Addr())
}
