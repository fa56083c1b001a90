package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/clubverde/memberweb/internal/logging"
)

// Producer publishes member activity events (cart mutations, orders,
// logins) keyed by session so one visitor's stream stays ordered.
type Producer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, key string, event map[string]any) error {
	if p == nil {
		return nil
	}
	if p.closed.Load() {
		return fmt.Errorf("producer closed")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
}

// PublishAsync fires the event off the request path. Delivery failure is a
// log line, never a shopper-visible error.
func (p *Producer) PublishAsync(ctx context.Context, key string, event map[string]any) {
	if p == nil {
		return
	}
	l := logging.FromContext(ctx)
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Publish(pubCtx, key, event); err != nil {
			l.Warn("event_publish_failed", "key", key, "error", err)
		}
	}()
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	p.closed.Store(true)
	return p.writer.Close()
}
