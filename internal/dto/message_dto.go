package dto

import "github.com/google/uuid"

// SummaryCreatedMessage travels over the local bus to the websocket hub.
type SummaryCreatedMessage struct {
	SummaryId  uuid.UUID `json:"summary_id"`
	UserId     uuid.UUID `json:"user_id"`
	VideoTitle string    `json:"video_title"`
}
