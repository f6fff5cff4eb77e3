package service

import (
	"context"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/repository/specification"
	"ai-videosummary-be/internal/repository/unitofwork"
)

type IAdminService interface {
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	GetAllUsers(ctx context.Context, page, limit int) (*dto.AdminUserListResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	premiumUsers, err := uow.UserRepository().Count(ctx, specification.PremiumOnly{})
	if err != nil {
		return nil, err
	}
	totalSummaries, err := uow.SummaryRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	summariesToday, err := uow.SummaryRepository().Count(ctx, specification.CreatedSince{Since: midnight})
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:     totalUsers,
		PremiumUsers:   premiumUsers,
		TotalSummaries: totalSummaries,
		SummariesToday: summariesToday,
	}, nil
}

func (s *adminService) GetAllUsers(ctx context.Context, page, limit int) (*dto.AdminUserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.AdminUserListResponse{Total: total}
	for _, u := range users {
		res.Users = append(res.Users, ToUserDTO(u))
	}
	return res, nil
}
