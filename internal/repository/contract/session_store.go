package contract

import (
	"context"

	"ai-videosummary-be/internal/entity"
)

// SessionStore is the identity store: durable persistence of at most one
// serialized User under a single fixed slot.
//
// Load returns (nil, nil) both when the slot is empty and when the stored
// payload cannot be parsed: a corrupt slot is indistinguishable from "no
// session" to callers. Save fully overwrites the prior value.
type SessionStore interface {
	Load(ctx context.Context) (*entity.User, error)
	Save(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context) error
}
