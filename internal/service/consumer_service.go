// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-videosummary-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// PushDelivery pushes a payload to a connected user's sockets. Implemented
// by the websocket hub.
type PushDelivery interface {
	Send(userId uuid.UUID, payload interface{})
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the local bus and turns summary-created messages
// into websocket pushes, off the request path.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  PushDelivery
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery PushDelivery,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.SummaryCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal summary message: %v", err)
		msg.Ack() // malformed messages are not retriable
		return
	}

	if cs.delivery != nil {
		cs.delivery.Send(payload.UserId, map[string]interface{}{
			"type":        "summary_created",
			"summary_id":  payload.SummaryId,
			"video_title": payload.VideoTitle,
		})
	}
	msg.Ack()
}
