package dto

import (
	"time"

	"github.com/google/uuid"
)

type ResolveVideoRequest struct {
	URL string `json:"url" validate:"required"`
}

type VideoMetadataDTO struct {
	VideoId     string `json:"video_id"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	ChannelName string `json:"channel_name"`
	PublishedAt string `json:"published_at"`
}

type SummarizeRequest struct {
	URL string `json:"url" validate:"required"`
}

type SummarizeResponse struct {
	Summary SummaryDTO `json:"summary"`
	User    UserDTO    `json:"user"`
}

type SummaryDTO struct {
	Id             uuid.UUID `json:"id"`
	VideoURL       string    `json:"video_url"`
	VideoTitle     string    `json:"video_title"`
	VideoThumbnail string    `json:"video_thumbnail"`
	VideoDuration  string    `json:"video_duration"`
	ChannelName    string    `json:"channel_name,omitempty"`
	PublishedAt    string    `json:"published_at,omitempty"`
	Summary        string    `json:"summary"`
	CreatedAt      time.Time `json:"created_at"`
}
