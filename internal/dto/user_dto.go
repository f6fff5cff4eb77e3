package dto

import "time"

// UsageStatusResponse backs the "N summaries remaining today" banner.
type UsageStatusResponse struct {
	IsPremium        bool       `json:"is_premium"`
	Used             int        `json:"used"`
	Limit            int        `json:"limit"` // -1 = unlimited
	Remaining        int        `json:"remaining"`
	ResetsAt         *time.Time `json:"resets_at,omitempty"`
	UpgradeAvailable bool       `json:"upgrade_available"`
}
