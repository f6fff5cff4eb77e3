package contract

import (
	"context"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SummaryRepository persists pipeline artifacts. Summaries are write-once;
// the only mutation is user-initiated deletion from the dashboard.
type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.VideoSummary) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VideoSummary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VideoSummary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
