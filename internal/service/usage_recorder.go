package service

import (
	"context"
	"time"

	"ai-videosummary-be/internal/entitlement"
	"ai-videosummary-be/internal/entity"
)

// UsageRecorder applies the side effect of one successful metered action.
// It does not re-check entitlement: the pipeline must have consulted the
// gate against the same snapshot before calling Record.
type UsageRecorder struct {
	session ISessionService
}

func NewUsageRecorder(session ISessionService) *UsageRecorder {
	return &UsageRecorder{session: session}
}

// Record increments both usage counters on a copy of the snapshot and
// persists it through the session manager. When the stored counter belongs
// to a previous calendar day it is reset before the increment, so the
// first summary of a new day always lands on a fresh count.
func (r *UsageRecorder) Record(ctx context.Context, snapshot *entity.User) (*entity.User, error) {
	now := time.Now()

	updated := snapshot.Clone()
	updated.DailyUsage = entitlement.EffectiveDailyUsage(updated, now) + 1
	updated.DailyUsageLastReset = now
	updated.TotalUsage++
	updated.UpdatedAt = now

	if err := r.session.UpdateUser(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
