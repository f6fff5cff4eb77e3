// Package entitlement decides whether a user may run a metered action
// (generating one summary). It is pure: no clock reads, no persistence.
package entitlement

import (
	"time"

	"ai-videosummary-be/internal/entity"
)

// DailyFreeLimit is the number of summaries a free account gets per
// calendar day.
const DailyFreeLimit = 3

// EffectiveDailyUsage returns the usage counter that applies to "now".
// A counter whose last reset falls on a previous calendar day belongs to
// that day and counts as zero.
func EffectiveDailyUsage(u *entity.User, now time.Time) int {
	if u == nil {
		return 0
	}
	if !sameDay(u.DailyUsageLastReset, now) {
		return 0
	}
	return u.DailyUsage
}

// CanSummarize reports whether the user is allowed to generate a summary
// right now. Premium users are never metered.
func CanSummarize(u *entity.User, now time.Time) bool {
	if u == nil {
		return false
	}
	if u.IsPremium {
		return true
	}
	return EffectiveDailyUsage(u, now) < DailyFreeLimit
}

// NextReset returns the instant the free quota refills: the upcoming
// midnight in now's location.
func NextReset(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
