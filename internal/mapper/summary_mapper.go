package mapper

import (
	"encoding/json"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/model"

	"gorm.io/datatypes"
)

type SummaryMapper struct{}

func NewSummaryMapper() *SummaryMapper {
	return &SummaryMapper{}
}

type summaryMetadata struct {
	ChannelName string `json:"channel_name"`
	PublishedAt string `json:"published_at"`
}

func (m *SummaryMapper) ToEntity(s *model.VideoSummary) *entity.VideoSummary {
	if s == nil {
		return nil
	}
	var meta summaryMetadata
	if len(s.Metadata) > 0 {
		// Malformed metadata degrades to empty fields, never an error.
		_ = json.Unmarshal(s.Metadata, &meta)
	}
	return &entity.VideoSummary{
		Id:             s.Id,
		UserId:         s.UserId,
		VideoURL:       s.VideoURL,
		VideoId:        s.VideoId,
		VideoTitle:     s.VideoTitle,
		VideoThumbnail: s.VideoThumbnail,
		VideoDuration:  s.VideoDuration,
		ChannelName:    meta.ChannelName,
		PublishedAt:    meta.PublishedAt,
		Summary:        s.Summary,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SummaryMapper) ToModel(s *entity.VideoSummary) *model.VideoSummary {
	if s == nil {
		return nil
	}
	meta, _ := json.Marshal(summaryMetadata{
		ChannelName: s.ChannelName,
		PublishedAt: s.PublishedAt,
	})
	return &model.VideoSummary{
		Id:             s.Id,
		UserId:         s.UserId,
		VideoURL:       s.VideoURL,
		VideoId:        s.VideoId,
		VideoTitle:     s.VideoTitle,
		VideoThumbnail: s.VideoThumbnail,
		VideoDuration:  s.VideoDuration,
		Summary:        s.Summary,
		Metadata:       datatypes.JSON(meta),
		CreatedAt:      s.CreatedAt,
	}
}
