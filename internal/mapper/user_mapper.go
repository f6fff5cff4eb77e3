package mapper

import (
	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                  u.Id,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Name:                u.Name,
		Role:                entity.UserRole(u.Role),
		IsPremium:           u.IsPremium,
		DailyUsage:          u.DailyUsage,
		DailyUsageLastReset: u.DailyUsageLastReset,
		TotalUsage:          u.TotalUsage,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                  u.Id,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Name:                u.Name,
		Role:                string(u.Role),
		IsPremium:           u.IsPremium,
		DailyUsage:          u.DailyUsage,
		DailyUsageLastReset: u.DailyUsageLastReset,
		TotalUsage:          u.TotalUsage,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
