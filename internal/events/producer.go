package events

import (
	"context"
	"encoding/json"
	"time"

	"vibe-commerce/internal/domain"
	"github.com/segmentio/kafka-go"
)

// OrderPlacedEvent is the payload emitted after a successful checkout.
type OrderPlacedEvent struct {
	OrderID       string    `json:"orderId"`
	CustomerEmail string    `json:"customerEmail"`
	ItemCount     int       `json:"itemCount"`
	TotalCents    int64     `json:"total"`
	PlacedAt      time.Time `json:"placedAt"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Producer{writer: writer}
}

// OrderPlaced publishes an order-placed event keyed by the order reference.
func (p *Producer) OrderPlaced(ctx context.Context, order domain.Order) error {
	data, err := json.Marshal(OrderPlacedEvent{
		OrderID:       order.OrderRef,
		CustomerEmail: order.CustomerEmail,
		ItemCount:     len(order.Items),
		TotalCents:    order.TotalCents,
		PlacedAt:      order.CreatedAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderRef),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
