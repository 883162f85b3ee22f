package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessrank/internal/config"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := config.Config{
		Addr:           ":8080",
		DBPath:         ":memory:",
		LogLevel:       "INFO",
		MaxUploadBytes: 4 << 20,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := config.Config{
		Addr:           "",
		DBPath:         ":memory:",
		LogLevel:       "INFO",
		MaxUploadBytes: 1024,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := config.Config{
		Addr:           ":8080",
		DBPath:         "",
		LogLevel:       "INFO",
		MaxUploadBytes: 1024,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_NonPositiveUploadLimit(t *testing.T) {
	cfg := config.Config{
		Addr:           ":8080",
		DBPath:         ":memory:",
		LogLevel:       "INFO",
		MaxUploadBytes: 0,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_UPLOAD_BYTES")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := config.Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, int64(4<<20), cfg.MaxUploadBytes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, int64(4<<20), cfg.MaxUploadBytes)
}
