package contract

import (
	"context"

	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/specification"

	"github.com/google/uuid"
)

// UserRepository is the credential set plus user-record persistence. The
// session manager is the only component that writes through it.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindOne returns (nil, nil) when no row matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
