package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRepositoryWithoutClient(t *testing.T) {
	repo := NewLeaderboardRepository(nil, nil)
	ctx := context.Background()

	assert.False(t, repo.Enabled())
	require.NoError(t, repo.Replace(ctx, "leaderboard:students", []LeaderboardEntry{{StudentID: "stu-1", Points: 75}}))

	top, err := repo.Top(ctx, "leaderboard:students", 5)
	require.NoError(t, err)
	assert.Empty(t, top)
	assert.NoError(t, repo.Close())
}
