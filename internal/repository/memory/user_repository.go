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

// UserRepository is a map-backed credential set for tests and offline dev.
// Specifications are gorm query builders, so only the shapes the services
// actually use are interpreted here.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]*entity.User)}
}

var _ contract.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Id] = user.Clone()
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	users, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

func (r *UserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.User
	for _, u := range r.users {
		if matchUser(u, specs) {
			out = append(out, u.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.PremiumOnly:
			if !u.IsPremium {
				return false
			}
		}
	}
	return true
}
