package dto

import (
	"errors"
	"fmt"
	"time"
)

// Error taxonomy for the summary pipeline and session manager. These are
// expected outcomes, not exceptional conditions: services return them and
// controllers translate them to response envelopes.
var (
	// ErrInvalidCredentials is returned on any login failure. It is shared
	// between "unknown email" and "wrong password" so the response never
	// reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when signup hits an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotAuthenticated is returned by operations that need a current user.
	ErrNotAuthenticated = errors.New("no authenticated session")

	// ErrInvalidInput is returned when the submitted link is not a
	// recognized video URL shape.
	ErrInvalidInput = errors.New("invalid video url")

	// ErrSummaryNotFound covers both a missing row and a row owned by
	// someone else, so ownership cannot be probed.
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrResolutionFailed wraps a video-metadata resolver failure.
	ErrResolutionFailed = errors.New("failed to fetch video data")

	// ErrGenerationFailed wraps a summary-generator failure. A pipeline run
	// that ends here must not have recorded usage.
	ErrGenerationFailed = errors.New("failed to generate summary")
)

// QuotaExceededError is a policy outcome, not a hard failure: the caller is
// expected to route the user to the upgrade flow rather than retry.
type QuotaExceededError struct {
	Limit    int       `json:"limit"`
	Used     int       `json:"used"`
	ResetsAt time.Time `json:"resets_at"`
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily summary limit reached (%d/%d)", e.Used, e.Limit)
}

// QuotaExceededData is the payload of 429 responses.
type QuotaExceededData struct {
	Limit            int       `json:"limit"`
	Used             int       `json:"used"`
	ResetsAt         time.Time `json:"resets_at"`
	UpgradeAvailable bool      `json:"upgrade_available"`
}
