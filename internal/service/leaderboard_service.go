package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
	"github.com/noah-isme/leaderboard-seeder/internal/repository"
	appErrors "github.com/noah-isme/leaderboard-seeder/pkg/errors"
)

type leaderboardStore interface {
	Enabled() bool
	Replace(ctx context.Context, key string, entries []repository.LeaderboardEntry) error
}

// LeaderboardService publishes the seeded students' totals.
type LeaderboardService struct {
	store  leaderboardStore
	key    string
	logger *zap.Logger
}

// NewLeaderboardService constructs a LeaderboardService.
func NewLeaderboardService(store leaderboardStore, key string, logger *zap.Logger) *LeaderboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaderboardService{store: store, key: key, logger: logger}
}

// Rank orders students by total points, ties broken by register number.
func Rank(students []models.Student) []repository.LeaderboardEntry {
	ordered := make([]models.Student, len(students))
	copy(ordered, students)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalPoints != ordered[j].TotalPoints {
			return ordered[i].TotalPoints > ordered[j].TotalPoints
		}
		return ordered[i].RegisterNo < ordered[j].RegisterNo
	})
	entries := make([]repository.LeaderboardEntry, len(ordered))
	for i, s := range ordered {
		entries[i] = repository.LeaderboardEntry{StudentID: s.ID, Points: s.TotalPoints}
	}
	return entries
}

// Publish replaces the leaderboard with the given students and returns the member count.
func (s *LeaderboardService) Publish(ctx context.Context, students []models.Student) (int, error) {
	if s.store == nil || !s.store.Enabled() {
		s.logger.Debug("leaderboard store disabled")
		return 0, nil
	}
	if len(students) == 0 {
		return 0, appErrors.ErrLeaderboardEmpty
	}
	entries := Rank(students)
	if err := s.store.Replace(ctx, s.key, entries); err != nil {
		return 0, err
	}
	s.logger.Info("leaderboard published",
		zap.String("key", s.key),
		zap.Int("members", len(entries)),
		zap.String("leader", entries[0].StudentID),
		zap.Int("leader_points", entries[0].Points),
	)
	return len(entries), nil
}
