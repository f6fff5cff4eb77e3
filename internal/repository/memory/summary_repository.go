package memory

import (
	"context"
	"sort"
	"sync"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/contract"
	"ai-videosummary-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SummaryRepository is a map-backed summary store for tests.
type SummaryRepository struct {
	mu        sync.RWMutex
	summaries map[uuid.UUID]*entity.VideoSummary
}

func NewSummaryRepository() *SummaryRepository {
	return &SummaryRepository{summaries: make(map[uuid.UUID]*entity.VideoSummary)}
}

var _ contract.SummaryRepository = (*SummaryRepository)(nil)

func (r *SummaryRepository) Create(ctx context.Context, summary *entity.VideoSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *summary
	r.summaries[summary.Id] = &cp
	return nil
}

func (r *SummaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.summaries, id)
	return nil
}

func (r *SummaryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VideoSummary, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *SummaryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VideoSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.VideoSummary
	for _, s := range r.summaries {
		if matchSummary(s, specs) {
			cp := *s
			out = append(out, &cp)
		}
	}
	// Newest first, matching the dashboard default.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *SummaryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func matchSummary(s *entity.VideoSummary, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != sp.UserID {
				return false
			}
		case specification.CreatedSince:
			if s.CreatedAt.Before(sp.Since) {
				return false
			}
		}
	}
	return true
}
