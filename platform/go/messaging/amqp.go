// Package messaging announces committed catalog writes on a RabbitMQ topic exchange.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// DefaultExchange receives event.* and booking.* notifications.
const DefaultExchange = "events"

// Producer publishes JSON notifications to a topic exchange.
type Producer struct {
	// RabbitMQ DSN
	connStr  string
	exchange string
	logger   *zap.Logger

	mu          sync.Mutex
	conn        *amqp.Connection
	channel     channel
	openChannel func() (channel, error)
}

// channel is the part of *amqp.Channel the producer relies on.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// NewProducer builds a producer; call Open before publishing.
func NewProducer(connStr, exchange string, logger *zap.Logger) *Producer {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Producer{connStr: connStr, exchange: exchange, logger: logger}
}

// Open dials the broker and declares the durable topic exchange.
func (p *Producer) Open() error {
	if p.connStr == "" {
		return errors.New("connection string required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.connectLocked()
}

func (p *Producer) connectLocked() error {
	conn, err := amqp.Dial(p.connStr)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	open := func() (channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, fmt.Errorf("open amqp channel: %w", err)
		}
		if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
		}
		return ch, nil
	}

	ch, err := open()
	if err != nil {
		_ = conn.Close()
		return err
	}

	p.conn, p.channel, p.openChannel = conn, ch, open
	return nil
}

// reopenChannelLocked replaces a channel the broker closed. The connection is re-dialed
// only when it is gone too.
func (p *Producer) reopenChannelLocked() error {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.openChannel == nil || (p.conn != nil && p.conn.IsClosed()) {
		return p.connectLocked()
	}

	ch, err := p.openChannel()
	if err != nil {
		return err
	}
	p.channel = ch
	return nil
}

// Close releases the channel and the connection.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	var err error
	if p.conn != nil {
		err = p.conn.Close()
	}
	p.conn, p.channel, p.openChannel = nil, nil, nil
	return err
}

// Publish sends payload as JSON under routingKey. A dropped connection is re-dialed and a
// channel closed by the broker is reopened, once per call.
func (p *Producer) Publish(ctx context.Context, routingKey string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := encode(payload)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || (p.conn != nil && p.conn.IsClosed()) {
		p.logger.Warn("amqp connection lost, reconnecting", zap.String("exchange", p.exchange))
		if err := p.connectLocked(); err != nil {
			return err
		}
	}

	err = p.channel.Publish(p.exchange, routingKey, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) {
		p.logger.Warn("amqp channel closed, reopening", zap.String("exchange", p.exchange), zap.Error(err))
		if err := p.reopenChannelLocked(); err != nil {
			return err
		}
		err = p.channel.Publish(p.exchange, routingKey, false, false, msg)
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func encode(payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode notification: %w", err)
	}
	return body, nil
}

// Nop discards notifications; used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
