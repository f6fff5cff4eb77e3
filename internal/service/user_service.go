package service

import (
	"context"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/entitlement"
)

type IUserService interface {
	Me(ctx context.Context) (*dto.UserDTO, error)
	UsageStatus(ctx context.Context) (*dto.UsageStatusResponse, error)
}

type userService struct {
	session ISessionService
}

func NewUserService(session ISessionService) IUserService {
	return &userService{session: session}
}

func (s *userService) Me(ctx context.Context) (*dto.UserDTO, error) {
	user := s.session.Current()
	if user == nil {
		return nil, dto.ErrNotAuthenticated
	}
	res := ToUserDTO(user)
	return &res, nil
}

// UsageStatus reports the quota view of the current user. Premium accounts
// get an unlimited marker so the banner can stay hidden.
func (s *userService) UsageStatus(ctx context.Context) (*dto.UsageStatusResponse, error) {
	user := s.session.Current()
	if user == nil {
		return nil, dto.ErrNotAuthenticated
	}

	if user.IsPremium {
		return &dto.UsageStatusResponse{
			IsPremium: true,
			Used:      user.TotalUsage,
			Limit:     -1,
			Remaining: -1,
		}, nil
	}

	now := time.Now()
	used := entitlement.EffectiveDailyUsage(user, now)
	remaining := entitlement.DailyFreeLimit - used
	if remaining < 0 {
		remaining = 0
	}
	resetsAt := entitlement.NextReset(now)

	return &dto.UsageStatusResponse{
		IsPremium:        false,
		Used:             used,
		Limit:            entitlement.DailyFreeLimit,
		Remaining:        remaining,
		ResetsAt:         &resetsAt,
		UpgradeAvailable: remaining == 0,
	}, nil
}
