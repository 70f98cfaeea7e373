package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shiplogix/shipping-service/internal/config"
	"github.com/shiplogix/shipping-service/internal/entities"
)

const (
	typeOrderCreated = "order.created"
	typeOrderDeleted = "order.deleted"
)

type orderEvent struct {
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id,omitempty"`
	Pincode    string    `json:"pincode,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits order lifecycle events. It is purely observational:
// callers log publish failures and move on.
type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Publisher) OrderCreated(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, orderEvent{
		Type:       typeOrderCreated,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Pincode:    order.Pincode,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) OrderDeleted(ctx context.Context, orderID int64) error {
	return p.publish(ctx, orderEvent{
		Type:       typeOrderDeleted,
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, event orderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("event published", slog.String("type", event.Type), slog.Int64("order_id", event.OrderID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
