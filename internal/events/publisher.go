package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Publisher delivers ledger events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

// AMQPPublisher publishes events to a durable topic exchange.
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	logger       *slog.Logger

	// amqp091 channels are not safe for concurrent publishing.
	mu sync.Mutex
}

var _ Publisher = (*AMQPPublisher)(nil)
var _ Publisher = NopPublisher{}

// NewAMQPPublisher dials url and declares the exchange.
func NewAMQPPublisher(url, exchangeName string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, exchangeName: exchangeName, logger: logger}, nil
}

// NewPublisher returns an AMQP publisher, or a NopPublisher when url is empty
// or the broker is unreachable.
func NewPublisher(url, exchangeName string, logger *slog.Logger) Publisher {
	if url == "" {
		return NopPublisher{}
	}
	p, err := NewAMQPPublisher(url, exchangeName, logger)
	if err != nil {
		logger.Warn("AMQP unavailable, domain events disabled", slog.String("error", err.Error()))
		return NopPublisher{}
	}
	logger.Info("AMQP publisher ready", slog.String("exchange", exchangeName))
	return p
}

// Publish sends the event with its type as routing key.
func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,     // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	p.logger.DebugContext(ctx, "Published ledger event",
		slog.String("type", string(event.Type)),
		slog.String("tenant_id", event.TenantID),
		slog.String("exchange", p.exchangeName))
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
