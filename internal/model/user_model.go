package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash        *string   `gorm:"type:varchar(255)"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Role                string    `gorm:"type:varchar(50);not null;default:'user'"`
	IsPremium           bool      `gorm:"default:false"`
	DailyUsage          int       `gorm:"default:0"`
	DailyUsageLastReset time.Time
	TotalUsage          int            `gorm:"default:0"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
