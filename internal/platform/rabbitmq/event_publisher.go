package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
)

type EventPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewEventPublisher(conn *amqp.Connection, queueName string) *EventPublisher {
	return &EventPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event model.ContentEvent) error {
	payload, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			MessageId:    event.RequestID,
		},
	); err != nil {
		return fmt.Errorf("publish content event failed: %w", err)
	}
	return nil
}

func EncodeEvent(event model.ContentEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal content event failed: %w", err)
	}
	return payload, nil
}

func DecodeEvent(body []byte) (model.ContentEvent, error) {
	var event model.ContentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("unmarshal content event failed: %w", err)
	}
	if event.Action == "" || event.Resource == "" {
		return event, fmt.Errorf("content event is missing action or resource")
	}
	return event, nil
}
