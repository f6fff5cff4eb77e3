package implementation

import (
	"context"
	"errors"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/mapper"
	"ai-videosummary-be/internal/model"
	"ai-videosummary-be/internal/repository/contract"
	"ai-videosummary-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SummaryMapper
}

func NewSummaryRepository(db *gorm.DB) contract.SummaryRepository {
	return &SummaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSummaryMapper(),
	}
}

func (r *SummaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SummaryRepositoryImpl) Create(ctx context.Context, summary *entity.VideoSummary) error {
	modelSummary := r.mapper.ToModel(summary)
	if err := r.db.WithContext(ctx).Create(modelSummary).Error; err != nil {
		return err
	}
	*summary = *r.mapper.ToEntity(modelSummary)
	return nil
}

func (r *SummaryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VideoSummary{}).Error
}

func (r *SummaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VideoSummary, error) {
	var modelSummary model.VideoSummary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSummary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSummary), nil
}

func (r *SummaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VideoSummary, error) {
	var modelSummaries []*model.VideoSummary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSummaries).Error; err != nil {
		return nil, err
	}

	summaries := make([]*entity.VideoSummary, 0, len(modelSummaries))
	for _, m := range modelSummaries {
		summaries = append(summaries, r.mapper.ToEntity(m))
	}
	return summaries, nil
}

func (r *SummaryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VideoSummary{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
