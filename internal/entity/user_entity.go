package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	Name         string
	Role         UserRole
	IsPremium    bool

	// Metered usage. DailyUsage counts summaries generated on the calendar
	// day of DailyUsageLastReset; a stale reset date means the counter
	// belongs to a previous day.
	DailyUsage          int
	DailyUsageLastReset time.Time
	TotalUsage          int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so callers can work on a snapshot without
// mutating the session-owned record.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.PasswordHash != nil {
		hash := *u.PasswordHash
		cp.PasswordHash = &hash
	}
	return &cp
}
