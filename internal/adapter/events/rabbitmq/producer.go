package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"daes-settlement-engine/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// EventProducer implements ports.EventPublisher on a durable topic exchange.
// Settlement lifecycle events are consumed downstream by reconciliation.
type EventProducer struct {
	conn     *amqp091.Connection
	exchange string
	log      zerolog.Logger

	mu      sync.Mutex // guards channel across publishes and the reconnect swap
	channel *amqp091.Channel
}

// NewEventProducer dials RabbitMQ and declares the settlement exchange.
// The dial timeout is bounded so startup does not hang on a dead broker.
func NewEventProducer(cfg config.RabbitMQConfig, log zerolog.Logger) (*EventProducer, error) {
	conn, err := amqp091.DialConfig(cfg.URL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("dialing rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // type
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,          // args
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declaring exchange: %w", err)
	}

	log.Info().
		Str("exchange", cfg.Exchange).
		Msg("RabbitMQ producer connected")

	return &EventProducer{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		log:      log,
	}, nil
}

// Publish sends a JSON message to the settlement exchange. On channel failure
// it reopens the channel once and retries.
func (p *EventProducer) Publish(ctx context.Context, routingKey string, body interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal event body: %w", err)
	}

	msg := amqp091.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        jsonBody,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}

	p.log.Warn().Err(err).
		Str("routing_key", routingKey).
		Msg("publish failed, reopening channel")

	ch, chErr := p.conn.Channel()
	if chErr != nil {
		return fmt.Errorf("reopen channel: %w", chErr)
	}
	p.channel = ch
	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Close gracefully closes the channel and connection.
func (p *EventProducer) Close() {
	p.mu.Lock()
	if p.channel != nil {
		p.channel.Close()
	}
	p.mu.Unlock()
	if p.conn != nil {
		p.conn.Close()
	}
}

// NopPublisher is the fallback publisher used when RabbitMQ is disabled or
// unreachable at startup. Settlement processing continues without events.
type NopPublisher struct {
	log zerolog.Logger
}

// NewNopPublisher creates a publisher that drops every event.
func NewNopPublisher(log zerolog.Logger) *NopPublisher {
	return &NopPublisher{log: log}
}

// Publish logs and drops the event.
func (p *NopPublisher) Publish(_ context.Context, routingKey string, _ interface{}) error {
	p.log.Debug().Str("routing_key", routingKey).Msg("event publishing disabled, dropping")
	return nil
}

// Close is a no-op.
func (p *NopPublisher) Close() {}
