package memory

import (
	"context"

	"ai-videosummary-be/internal/repository/contract"
	"ai-videosummary-be/internal/repository/unitofwork"
)

// Factory hands out units of work over the shared in-memory repositories.
// Transactions are no-ops; the maps are already serialized by their own
// locks.
type Factory struct {
	Users     *UserRepository
	Summaries *SummaryRepository
}

func NewFactory() *Factory {
	return &Factory{
		Users:     NewUserRepository(),
		Summaries: NewSummaryRepository(),
	}
}

var _ unitofwork.RepositoryFactory = (*Factory)(nil)

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{factory: f}
}

type memoryUnitOfWork struct {
	factory *Factory
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) UserRepository() contract.UserRepository {
	return u.factory.Users
}

func (u *memoryUnitOfWork) SummaryRepository() contract.SummaryRepository {
	return u.factory.Summaries
}
