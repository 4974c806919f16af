package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Config holds the RabbitMQ topology used for vote events.
type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQ publishes vote events to a durable direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    channel
	exchange   string
	routingKey string
}

// NewRabbitMQ dials the broker and declares the exchange, the queue and the
// binding between them.
func NewRabbitMQ(cfg Config) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) (*RabbitMQ, error) {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	if cfg.QueueName != "" {
		q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
		if err != nil {
			return fail("declare queue", err)
		}
		if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
			return fail("bind queue", err)
		}
	}

	log.Info().
		Str("exchange", cfg.Exchange).
		Str("queue", cfg.QueueName).
		Str("routing_key", cfg.RoutingKey).
		Msg("connected to rabbitmq")

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
	}, nil
}

// PublishVote sends ev as a persistent JSON message.
func (r *RabbitMQ) PublishVote(ctx context.Context, ev VoteEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    ev.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().
		Str("print", ev.PrintNumber).
		Str("action", ev.Action).
		Msg("published vote event")
	return nil
}

// Close closes the channel and the connection.
func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
