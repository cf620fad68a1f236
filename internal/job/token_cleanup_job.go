package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kanmind/internal/metrics"
	"kanmind/internal/repository"
)

// TokenCleanupJob removes expired auth tokens from the database.
// It only runs when a token TTL is configured; without a TTL tokens
// never expire and there is nothing to clean.
type TokenCleanupJob struct {
	tokenRepo repository.TokenRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewTokenCleanupJob creates a new TokenCleanupJob instance
func NewTokenCleanupJob(
	tokenRepo repository.TokenRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TokenCleanupJob {
	return &TokenCleanupJob{
		tokenRepo: tokenRepo,
		metrics:   m,
		logger:    logger,
	}
}

// Run executes the cleanup job
func (j *TokenCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := j.tokenRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		j.logger.Error("Failed to delete expired tokens", zap.Error(err))
		return
	}

	if deleted == 0 {
		j.logger.Debug("No expired tokens found")
		return
	}

	if j.metrics != nil {
		j.metrics.AddTokensCleaned(deleted)
	}
	j.logger.Info("Deleted expired tokens", zap.Int64("count", deleted))
}
