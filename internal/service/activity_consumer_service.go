package service

import (
	"context"
	"encoding/json"
	"time"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/pkg/logger"
	"cashbook-be/internal/repository/unitofwork"
	"cashbook-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const persistAttempts = 3

// EventForwarder ships persisted events out of the process. *nats.Publisher satisfies it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IActivityConsumerService interface {
	Consume(ctx context.Context) error
}

type activityConsumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	forwarder  EventForwarder
	logger     logger.ILogger
}

// NewActivityConsumerService wires the activity log writer. forwarder may be nil.
func NewActivityConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	forwarder EventForwarder,
	logger logger.ILogger,
) IActivityConsumerService {
	return &activityConsumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		forwarder:  forwarder,
		logger:     logger,
	}
}

func (cs *activityConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *activityConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.LedgerEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("ACTIVITY", "Failed to unmarshal ledger event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Poison message; redelivery would fail the same way
		msg.Ack()
		return
	}

	activity := &entity.ActivityLog{
		Id:         uuid.New(),
		EventType:  event.Type,
		UserId:     event.UserId,
		BookId:     event.BookId,
		EntityType: event.EntityType,
		EntityId:   event.EntityId,
		Details:    event.Data,
		OccurredAt: event.OccurredAt,
	}

	if err := cs.persist(ctx, activity); err != nil {
		cs.logger.Error("ACTIVITY", "Failed to persist activity log", map[string]interface{}{
			"event_type": event.Type,
			"entity_id":  event.EntityId.String(),
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(ctx, event); err != nil {
			cs.logger.Warn("ACTIVITY", "Failed to forward ledger event", map[string]interface{}{
				"event_type": event.Type,
				"error":      err.Error(),
			})
		}
	}

	cs.logger.Info("ACTIVITY", "Activity recorded", map[string]interface{}{
		"event_type": event.Type,
		"entity_id":  event.EntityId.String(),
	})
	msg.Ack()
}

// persist retries in place; gochannel redelivers a Nacked message immediately,
// which would spin on a database that is down.
func (cs *activityConsumerService) persist(ctx context.Context, activity *entity.ActivityLog) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	var err error
	for attempt := 1; attempt <= persistAttempts; attempt++ {
		if err = uow.ActivityLogRepository().Create(ctx, activity); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
		}
	}
	return err
}
