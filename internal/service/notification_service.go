package service

import (
	"context"
	"strings"

	"ai-videosummary-be/internal/pkg/logger"
	"ai-videosummary-be/pkg/events"
	pktNats "ai-videosummary-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationService tails the durable event stream and turns selected
// events into client pushes. It also gives operators an audit trail of
// everything flowing through the bus.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   PushDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery PushDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start event subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The subject arrives as events.<TYPE>.
	eventType := strings.TrimPrefix(event.EventType(), "events.")

	s.logger.Info("NotificationService", "Event received", map[string]interface{}{
		"type": eventType,
		"data": event.Payload(),
	})

	if eventType != events.TypePremiumUpgraded || s.delivery == nil {
		return nil
	}

	rawId, _ := event.Payload()["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		// Drop rather than redeliver, the payload will not get better.
		s.logger.Warn("NotificationService", "Event carries no usable user_id", map[string]interface{}{"type": eventType})
		return nil
	}

	s.delivery.Send(userId, map[string]interface{}{
		"type": "premium_activated",
	})
	return nil
}
