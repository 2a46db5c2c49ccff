package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LeaderboardEntry is one member of the published score board.
type LeaderboardEntry struct {
	StudentID string
	Points    int
}

// LeaderboardRepository publishes student scores into a Redis sorted set.
type LeaderboardRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewLeaderboardRepository constructs the repository. A nil client disables publishing.
func NewLeaderboardRepository(client *redis.Client, logger *zap.Logger) *LeaderboardRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaderboardRepository{client: client, logger: logger}
}

// Enabled reports whether a Redis client is configured.
func (r *LeaderboardRepository) Enabled() bool {
	return r != nil && r.client != nil
}

// Replace swaps the sorted set at key for the provided entries in a single transaction.
func (r *LeaderboardRepository) Replace(ctx context.Context, key string, entries []LeaderboardEntry) error {
	if !r.Enabled() {
		return nil
	}

	members := make([]redis.Z, len(entries))
	for i, entry := range entries {
		members[i] = redis.Z{Score: float64(entry.Points), Member: entry.StudentID}
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis replace %s: %w", key, err)
	}

	r.logger.Debug("leaderboard replaced", zap.String("key", key), zap.Int("members", len(members)))
	return nil
}

// Top returns the highest scoring student ids, best first.
func (r *LeaderboardRepository) Top(ctx context.Context, key string, limit int64) ([]LeaderboardEntry, error) {
	if !r.Enabled() {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis top %s: %w", key, err)
	}

	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, z := range scores {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{StudentID: member, Points: int(z.Score)})
	}
	return entries, nil
}

// Close releases the underlying Redis connection if present.
func (r *LeaderboardRepository) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
