package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VideoSummary struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoURL       string    `gorm:"type:text;not null"`
	VideoId        string    `gorm:"type:varchar(64);not null;index"`
	VideoTitle     string    `gorm:"type:text"`
	VideoThumbnail string    `gorm:"type:text"`
	VideoDuration  string    `gorm:"type:varchar(32)"`
	Summary        string    `gorm:"type:text;not null"`
	// Resolver payload kept verbatim for the dashboard (channel, publish date).
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (VideoSummary) TableName() string {
	return "video_summaries"
}
