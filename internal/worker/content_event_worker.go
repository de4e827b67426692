package worker

import (
	"context"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/platform/rabbitmq"
)

type EventStore interface {
	Create(ctx context.Context, event *model.ContentEvent) error
}

// ContentEventWorker drains the content event queue into the activity log table.
type ContentEventWorker struct {
	conn      *amqp.Connection
	store     EventStore
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewContentEventWorker(conn *amqp.Connection, store EventStore, queueName string) *ContentEventWorker {
	return &ContentEventWorker{
		conn:      conn,
		store:     store,
		queueName: queueName,
	}
}

func (w *ContentEventWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	if err := ch.Qos(16, 0, false); err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("set worker qos failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if err := w.handle(workerCtx, d.Body); err != nil {
					log.Printf("worker handle content event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *ContentEventWorker) handle(ctx context.Context, body []byte) error {
	event, err := rabbitmq.DecodeEvent(body)
	if err != nil {
		return err
	}
	event.ID = 0
	if err := w.store.Create(ctx, &event); err != nil {
		return fmt.Errorf("persist content event failed: %w", err)
	}
	return nil
}

func (w *ContentEventWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
