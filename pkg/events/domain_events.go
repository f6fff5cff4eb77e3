package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published on the bus.
const (
	TypeUserRegistered  = "USER_REGISTERED"
	TypeUserLogin       = "USER_LOGIN"
	TypeSummaryCreated  = "SUMMARY_CREATED"
	TypePremiumUpgraded = "PREMIUM_UPGRADED"
)

func NewUserRegistered(userId uuid.UUID, email string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewUserLogin(userId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_id": userId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewSummaryCreated(summaryId, userId uuid.UUID, videoTitle string) Event {
	return BaseEvent{
		Type: TypeSummaryCreated,
		Data: map[string]interface{}{
			"summary_id":  summaryId.String(),
			"user_id":     userId.String(),
			"video_title": videoTitle,
		},
		OccurredAt: time.Now(),
	}
}

func NewPremiumUpgraded(userId uuid.UUID, orderId string) Event {
	return BaseEvent{
		Type: TypePremiumUpgraded,
		Data: map[string]interface{}{
			"user_id":  userId.String(),
			"order_id": orderId,
		},
		OccurredAt: time.Now(),
	}
}
