package implementation

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/contract"

	"github.com/google/uuid"
)

// sessionRecord is the on-disk shape of the session slot. Kept separate
// from the entity so the persisted format does not drift with internal
// refactors.
type sessionRecord struct {
	Id                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	IsPremium           bool      `json:"is_premium"`
	DailyUsage          int       `json:"daily_usage"`
	DailyUsageLastReset time.Time `json:"daily_usage_last_reset"`
	TotalUsage          int       `json:"total_usage"`
	// The hash must round-trip: a restored session is written back through
	// UpdateUser verbatim, and a record without it would wipe the stored
	// credential on the next counter update.
	PasswordHash *string   `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toSessionRecord(u *entity.User) *sessionRecord {
	return &sessionRecord{
		Id:                  u.Id,
		Email:               u.Email,
		Name:                u.Name,
		Role:                string(u.Role),
		IsPremium:           u.IsPremium,
		DailyUsage:          u.DailyUsage,
		DailyUsageLastReset: u.DailyUsageLastReset,
		TotalUsage:          u.TotalUsage,
		PasswordHash:        u.PasswordHash,
		CreatedAt:           u.CreatedAt,
	}
}

func (r *sessionRecord) toEntity() *entity.User {
	return &entity.User{
		Id:                  r.Id,
		Email:               r.Email,
		Name:                r.Name,
		Role:                entity.UserRole(r.Role),
		IsPremium:           r.IsPremium,
		DailyUsage:          r.DailyUsage,
		DailyUsageLastReset: r.DailyUsageLastReset,
		TotalUsage:          r.TotalUsage,
		PasswordHash:        r.PasswordHash,
		CreatedAt:           r.CreatedAt,
	}
}

// FileSessionStore keeps the single session slot in a JSON file so the
// signed-in user survives process restarts.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) contract.SessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Load(ctx context.Context) (*entity.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var record sessionRecord
	// A corrupt slot is treated as "no session", never surfaced.
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil
	}
	if record.Id == uuid.Nil {
		return nil, nil
	}

	return record.toEntity(), nil
}

func (s *FileSessionStore) Save(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(toSessionRecord(user))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// Write-then-rename so a crash mid-write never leaves a truncated slot.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileSessionStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
