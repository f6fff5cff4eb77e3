package service

import (
	"context"
	"testing"
	"time"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminStats(t *testing.T) {
	factory := memory.NewFactory()
	ctx := context.Background()

	free := seedUser(t, factory, "user@example.com", "password")
	premium := seedUser(t, factory, "premium@example.com", "password")
	premium.IsPremium = true
	assert.NoError(t, factory.Users.Update(ctx, premium))

	now := time.Now()
	for _, s := range []*entity.VideoSummary{
		{Id: uuid.New(), UserId: free.Id, CreatedAt: now.Add(-48 * time.Hour)},
		{Id: uuid.New(), UserId: free.Id, CreatedAt: now},
		{Id: uuid.New(), UserId: premium.Id, CreatedAt: now},
	} {
		assert.NoError(t, factory.Summaries.Create(ctx, s))
	}

	svc := NewAdminService(factory)
	stats, err := svc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.PremiumUsers)
	assert.Equal(t, int64(3), stats.TotalSummaries)
	assert.Equal(t, int64(2), stats.SummariesToday)
}

func TestAdminUserListClampsPagination(t *testing.T) {
	factory := memory.NewFactory()
	seedUser(t, factory, "user@example.com", "password")

	svc := NewAdminService(factory)
	res, err := svc.GetAllUsers(context.Background(), -3, 100000)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	assert.Len(t, res.Users, 1)
}
