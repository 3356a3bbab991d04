package events

import (
	"context"
	"encoding/json"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// eventPublisher pushes schedule integration events to RabbitMQ. Publishing
// is best effort from the caller's point of view: failures are returned so
// the caller can log them without interrupting the main flow.
type eventPublisher struct {
	conn *amqp091.Connection
	log  *zap.Logger
}

func NewEventPublisher(conn *amqp091.Connection, logger *zap.Logger) contracts.EventPublisher {
	return &eventPublisher{
		conn: conn,
		log:  logger,
	}
}

func (p *eventPublisher) PublishScheduleChecked(ctx context.Context, event contracts.ScheduleCheckedEvent) error {
	return p.publish(ctx, constvars.QueueScheduleChecked, event)
}

func (p *eventPublisher) PublishProposalReady(ctx context.Context, event contracts.ProposalReadyEvent) error {
	return p.publish(ctx, constvars.QueueScheduleProposalReady, event)
}

func (p *eventPublisher) publish(ctx context.Context, queue string, event interface{}) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return exceptions.ErrEventPublish(err, queue)
	}
	defer ch.Close()

	// Durable queue so events survive broker restarts.
	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrEventPublish(err, queue)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrEventPublish(err, queue)
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrEventPublish(err, queue)
	}

	p.log.Debug("published schedule event", zap.String("queue", queue))
	return nil
}
