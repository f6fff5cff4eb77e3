package memory

import (
	"context"
	"time"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const sessionSlot = "session:current"

// SessionStore is a non-durable identity store backed by go-cache. Used in
// tests and ephemeral dev runs where restart survival does not matter.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore() contract.SessionStore {
	return &SessionStore{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (s *SessionStore) Load(ctx context.Context) (*entity.User, error) {
	if x, found := s.cache.Get(sessionSlot); found {
		if u, ok := x.(*entity.User); ok {
			return u.Clone(), nil
		}
	}
	return nil, nil
}

func (s *SessionStore) Save(ctx context.Context, user *entity.User) error {
	s.cache.Set(sessionSlot, user.Clone(), cache.NoExpiration)
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	s.cache.Delete(sessionSlot)
	return nil
}
