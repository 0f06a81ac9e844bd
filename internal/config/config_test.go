package config_test

import (
	"os"
	"testing"

	"github.com/mfreitas/flashdeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                "127.0.0.1:8080",
		DBPath:              "test.db",
		LogLevel:            "INFO",
		InitialEaseFactor:   2.5,
		MinEaseFactor:       1.3,
		LapsePenalty:        0.2,
		PassThreshold:       3,
		DifficultLapses:     3,
		DifficultEaseFactor: 1.5,
		SessionLimit:        0,
		ShuffleAllMode:      true,
		HistoryWorkerCount:  1,
		HistoryQueueSize:    64,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		valid bool
	}{
		{name: "invalid level", level: "INVALID", valid: false},
		{name: "empty level", level: "", valid: false},
		{name: "lowercase valid level", level: "debug", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_InvalidPassThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
	}{
		{name: "zero threshold passes every grade", threshold: 0},
		{name: "threshold above grade set", threshold: 5},
		{name: "negative threshold", threshold: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.PassThreshold = tt.threshold

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "PASS_THRESHOLD")
		})
	}
}

func TestValidate_EaseFactorBounds(t *testing.T) {
	cfg := validConfig()
	cfg.MinEaseFactor = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MIN_EASE_FACTOR")

	cfg = validConfig()
	cfg.InitialEaseFactor = 1.0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INITIAL_EASE_FACTOR")

	cfg = validConfig()
	cfg.DifficultEaseFactor = 1.0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DIFFICULT_EASE_FACTOR")
}

func TestValidate_WorkerSettings(t *testing.T) {
	cfg := validConfig()
	cfg.HistoryWorkerCount = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HISTORY_WORKER_COUNT")

	cfg = validConfig()
	cfg.HistoryQueueSize = 0

	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HISTORY_QUEUE_SIZE")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:     "",
		DBPath:   "",
		LogLevel: "INVALID",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "PASS_THRESHOLD")
	assert.Contains(t, errStr, "HISTORY_WORKER_COUNT")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", "127.0.0.1:9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("PASS_THRESHOLD", "2")
	t.Setenv("DIFFICULT_EASE_FACTOR", "1.7")

	cfg := config.Load()

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 2, cfg.PassThreshold)
	assert.Equal(t, 1.7, cfg.DifficultEaseFactor)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "LOG_LEVEL", "INITIAL_EASE_FACTOR", "MIN_EASE_FACTOR",
		"LAPSE_PENALTY", "PASS_THRESHOLD", "DIFFICULT_LAPSES", "DIFFICULT_EASE_FACTOR",
		"SESSION_LIMIT", "SHUFFLE_ALL_MODE", "HISTORY_WORKER_COUNT", "HISTORY_QUEUE_SIZE",
	} {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v)
			os.Unsetenv(key)
		}
	}

	cfg := config.Load()

	assert.Equal(t, 2.5, cfg.InitialEaseFactor)
	assert.Equal(t, 1.3, cfg.MinEaseFactor)
	assert.Equal(t, 0.2, cfg.LapsePenalty)
	assert.Equal(t, 3, cfg.PassThreshold)
	assert.True(t, cfg.ShuffleAllMode)
	assert.NoError(t, cfg.Validate())
}
