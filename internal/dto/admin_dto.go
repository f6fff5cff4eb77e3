package dto

// AdminStatsResponse backs the admin panel header cards.
type AdminStatsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	PremiumUsers   int64 `json:"premium_users"`
	TotalSummaries int64 `json:"total_summaries"`
	SummariesToday int64 `json:"summaries_today"`
}

type AdminUserListResponse struct {
	Users []UserDTO `json:"users"`
	Total int64     `json:"total"`
}
