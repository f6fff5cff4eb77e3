package service

import (
	"context"
	"testing"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/entitlement"
	"ai-videosummary-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestUsageStatusFreeUser(t *testing.T) {
	f := newPipeline(t, func(u *entity.User) {
		u.DailyUsage = 2
		u.DailyUsageLastReset = time.Now()
	})
	svc := NewUserService(f.session)

	status, err := svc.UsageStatus(context.Background())
	assert.NoError(t, err)
	assert.False(t, status.IsPremium)
	assert.Equal(t, 2, status.Used)
	assert.Equal(t, entitlement.DailyFreeLimit, status.Limit)
	assert.Equal(t, 1, status.Remaining)
	assert.False(t, status.UpgradeAvailable)
	assert.NotNil(t, status.ResetsAt)
}

func TestUsageStatusExhaustedOffersUpgrade(t *testing.T) {
	f := newPipeline(t, func(u *entity.User) {
		u.DailyUsage = entitlement.DailyFreeLimit
		u.DailyUsageLastReset = time.Now()
	})
	svc := NewUserService(f.session)

	status, err := svc.UsageStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, status.Remaining)
	assert.True(t, status.UpgradeAvailable)
}

func TestUsageStatusPremiumIsUnlimited(t *testing.T) {
	f := newPipeline(t, func(u *entity.User) {
		u.IsPremium = true
		u.TotalUsage = 142
	})
	svc := NewUserService(f.session)

	status, err := svc.UsageStatus(context.Background())
	assert.NoError(t, err)
	assert.True(t, status.IsPremium)
	assert.Equal(t, -1, status.Limit)
	assert.Equal(t, -1, status.Remaining)
	assert.Equal(t, 142, status.Used)
}

func TestUsageStatusStaleCounterReadsAsZero(t *testing.T) {
	f := newPipeline(t, func(u *entity.User) {
		u.DailyUsage = entitlement.DailyFreeLimit
		u.DailyUsageLastReset = time.Now().AddDate(0, 0, -2)
	})
	svc := NewUserService(f.session)

	status, err := svc.UsageStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, status.Used)
	assert.Equal(t, entitlement.DailyFreeLimit, status.Remaining)
}

func TestUsageStatusRequiresSession(t *testing.T) {
	f := newPipeline(t, nil)
	assert.NoError(t, f.session.Logout(context.Background()))

	svc := NewUserService(f.session)
	_, err := svc.UsageStatus(context.Background())
	assert.ErrorIs(t, err, dto.ErrNotAuthenticated)
}
