package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// sessionKey is the single fixed slot; there is no multi-session support.
const sessionKey = "session:current"

// RedisSessionStore keeps the session slot in Redis for deployments where
// the process is replicated or restarted behind a load balancer.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) contract.SessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Load(ctx context.Context) (*entity.User, error) {
	data, err := s.rdb.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil
	}
	if record.Id == uuid.Nil {
		return nil, nil
	}

	return record.toEntity(), nil
}

func (s *RedisSessionStore) Save(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(toSessionRecord(user))
	if err != nil {
		return err
	}
	// No TTL: the slot lives until logout clears it.
	return s.rdb.Set(ctx, sessionKey, data, 0).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, sessionKey).Err()
}
