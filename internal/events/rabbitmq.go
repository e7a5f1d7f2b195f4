// Package events publishes background side effects to RabbitMQ.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
)

var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher sends JSON events to one durable queue. The topic travels as
// the message type so consumers can route on it.
type Publisher struct {
	url    string
	queue  string
	logger *zap.Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

func NewPublisher(cfg *config.RabbitMQConfig, logger *zap.Logger) (*Publisher, error) {
	p := &Publisher{
		url:    cfg.URL,
		queue:  cfg.Queue,
		logger: logger,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	logger.Info("RabbitMQ connection established", zap.String("queue", p.queue))
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

// Publish delivers one persistent message, redialing once if the connection dropped.
func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		p.logger.Warn("RabbitMQ connection lost, reconnecting")
		if err := p.connect(); err != nil {
			return err
		}
	}

	err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         topic,
		Timestamp:    time.Now(),
		Body:         payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
