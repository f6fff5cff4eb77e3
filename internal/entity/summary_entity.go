package entity

import (
	"time"

	"github.com/google/uuid"
)

// VideoMetadata is what the external resolver returns for a video id.
type VideoMetadata struct {
	VideoId     string
	Title       string
	Thumbnail   string
	Duration    string
	ChannelName string
	PublishedAt string
}

// VideoSummary is the artifact of one successful pipeline run. It is
// created atomically after generation completes and never mutated.
type VideoSummary struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	VideoURL       string
	VideoId        string
	VideoTitle     string
	VideoThumbnail string
	VideoDuration  string
	ChannelName    string
	PublishedAt    string
	Summary        string
	CreatedAt      time.Time
}
