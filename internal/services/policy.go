package services

import (
	"github.com/mfreitas/flashdeck/internal/config"
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/srs"
)

// Policy bundles the scheduling and selection tunables the services share.
type Policy struct {
	Scheduler         srs.Params
	InitialEaseFactor float64
	DifficultLapses   int
	DifficultEase     float64
	SessionLimit      int
	ShuffleAllMode    bool
}

// PolicyFromConfig builds the service policy from loaded configuration.
func PolicyFromConfig(cfg config.Config) Policy {
	return Policy{
		Scheduler: srs.Params{
			MinEaseFactor: cfg.MinEaseFactor,
			LapsePenalty:  cfg.LapsePenalty,
			PassThreshold: models.Quality(cfg.PassThreshold),
		},
		InitialEaseFactor: cfg.InitialEaseFactor,
		DifficultLapses:   cfg.DifficultLapses,
		DifficultEase:     cfg.DifficultEaseFactor,
		SessionLimit:      cfg.SessionLimit,
		ShuffleAllMode:    cfg.ShuffleAllMode,
	}
}
