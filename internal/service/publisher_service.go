package service

import (
	"context"
	"encoding/json"

	"cashbook-be/internal/pkg/logger"
	"cashbook-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.LedgerEvent) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (ps *publisherService) Publish(ctx context.Context, event events.LedgerEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.Type)

	return ps.publisher.Publish(ps.topicName, msg)
}

// publishActivity is fire-and-forget: the mutation already happened, so a bus
// failure is logged and swallowed.
func publishActivity(ctx context.Context, publisher IPublisherService, log logger.ILogger, event events.LedgerEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("ACTIVITY", "Failed to publish ledger event", map[string]interface{}{
			"event_type": event.Type,
			"entity_id":  event.EntityId.String(),
			"error":      err.Error(),
		})
	}
}
