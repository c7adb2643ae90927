// Package scheduler runs the periodic background jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/aidiy/backend/internal/application/usecase/goal"
	"github.com/aidiy/backend/internal/integration/persistence"
)

// GoalSweeper expires approved goals whose window has lapsed. Expiry is
// enforced server-side so goals expire even when no client is open. The same
// tick also purges refresh tokens that are past their expiry.
type GoalSweeper struct {
	expireGoalsUseCase *goal.ExpireGoalsUseCase
	tokenRepo          persistence.TokenRepository
	pollInterval       time.Duration
	batchSize          int
}

// SweeperConfig holds configuration for the goal sweeper.
type SweeperConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultSweeperConfig returns the default sweeper configuration.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		PollInterval: time.Minute,
		BatchSize:    100,
	}
}

// NewGoalSweeper creates a new goal sweeper.
func NewGoalSweeper(expireGoalsUseCase *goal.ExpireGoalsUseCase, tokenRepo persistence.TokenRepository, config SweeperConfig) *GoalSweeper {
	return &GoalSweeper{
		expireGoalsUseCase: expireGoalsUseCase,
		tokenRepo:          tokenRepo,
		pollInterval:       config.PollInterval,
		batchSize:          config.BatchSize,
	}
}

// Start begins the sweeper loop. It blocks until the context is cancelled.
func (s *GoalSweeper) Start(ctx context.Context) {
	slog.Info("Goal sweeper started",
		"poll_interval", s.pollInterval,
		"batch_size", s.batchSize,
	)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// Sweep immediately on start, then on ticker
	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Goal sweeper shutting down")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one expiry pass.
func (s *GoalSweeper) sweep(ctx context.Context) {
	now := time.Now()

	output, err := s.expireGoalsUseCase.Execute(ctx, goal.ExpireGoalsInput{
		Now:   now,
		Limit: s.batchSize,
	})
	if err != nil {
		slog.Error("Goal expiry sweep failed", "error", err)
		return
	}
	if output.Expired > 0 {
		slog.Info("Expired goals past their deadline", "count", output.Expired)
	}

	purged, err := s.tokenRepo.DeleteExpired(ctx, now)
	if err != nil {
		slog.Error("Refresh token cleanup failed", "error", err)
		return
	}
	if purged > 0 {
		slog.Debug("Purged expired refresh tokens", "count", purged)
	}
}
