package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// Scheduling policy. Tunables, not constants: the difficult-card
	// thresholds in particular are deliberately configuration.
	InitialEaseFactor float64
	MinEaseFactor     float64
	LapsePenalty      float64
	PassThreshold     int

	// A card counts as difficult when it has lapsed at least
	// DifficultLapses times or its ease factor sits at or below
	// DifficultEaseFactor.
	DifficultLapses     int
	DifficultEaseFactor float64

	// Study session behavior.
	SessionLimit   int
	ShuffleAllMode bool

	// Review-history writer pool.
	HistoryWorkerCount int
	HistoryQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", "127.0.0.1:8080"),
		DBPath:              envOr("DB_PATH", "file:flashdeck.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		InitialEaseFactor:   envFloatOr("INITIAL_EASE_FACTOR", 2.5),
		MinEaseFactor:       envFloatOr("MIN_EASE_FACTOR", 1.3),
		LapsePenalty:        envFloatOr("LAPSE_PENALTY", 0.2),
		PassThreshold:       envIntOr("PASS_THRESHOLD", 3),
		DifficultLapses:     envIntOr("DIFFICULT_LAPSES", 3),
		DifficultEaseFactor: envFloatOr("DIFFICULT_EASE_FACTOR", 1.5),
		SessionLimit:        envIntOr("SESSION_LIMIT", 0),
		ShuffleAllMode:      envBoolOr("SHUFFLE_ALL_MODE", true),
		HistoryWorkerCount:  envIntOr("HISTORY_WORKER_COUNT", 1),
		HistoryQueueSize:    envIntOr("HISTORY_QUEUE_SIZE", 64),
	}
}

// Validate reports every invalid setting at once so a bad environment can be
// fixed in a single pass.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.MinEaseFactor <= 0 {
		problems = append(problems, "MIN_EASE_FACTOR must be positive")
	}
	if c.InitialEaseFactor < c.MinEaseFactor {
		problems = append(problems, "INITIAL_EASE_FACTOR must be at least MIN_EASE_FACTOR")
	}
	if c.LapsePenalty < 0 {
		problems = append(problems, "LAPSE_PENALTY cannot be negative")
	}
	if c.PassThreshold < 1 || c.PassThreshold > 4 {
		problems = append(problems, "PASS_THRESHOLD must be between 1 and 4")
	}
	if c.DifficultLapses < 1 {
		problems = append(problems, "DIFFICULT_LAPSES must be at least 1")
	}
	if c.DifficultEaseFactor < c.MinEaseFactor {
		problems = append(problems, "DIFFICULT_EASE_FACTOR must be at least MIN_EASE_FACTOR")
	}
	if c.SessionLimit < 0 {
		problems = append(problems, "SESSION_LIMIT cannot be negative")
	}
	if c.HistoryWorkerCount < 1 {
		problems = append(problems, "HISTORY_WORKER_COUNT must be at least 1")
	}
	if c.HistoryQueueSize < 1 {
		problems = append(problems, "HISTORY_QUEUE_SIZE must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
