package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/shared/constant"
)

const exchangeKind = "topic"

// Publisher sends JSON bodies to a durable topic exchange, reconnecting lazily when the
// broker connection drops.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

type publisher struct {
	url      string
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func New(config *config.Config) Publisher {
	p := &publisher{
		url:      config.RabbitMQ.URL,
		exchange: config.RabbitMQ.Exchange,
	}

	if err := p.ensureConnection(); err != nil {
		log.Error().Err(err).Str("exchange", p.exchange).Msg("RabbitMQ unavailable, will retry on publish")
	}

	return p
}

func (p *publisher) ensureConnection() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil && !p.conn.IsClosed() && p.channel != nil && !p.channel.IsClosed() {
		return nil
	}

	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	p.conn = conn
	p.channel = ch

	log.Info().Str("exchange", p.exchange).Msg("Connected to RabbitMQ")

	return nil
}

func (p *publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	if err := p.ensureConnection(); err != nil {
		return err
	}

	p.mu.Lock()
	ch := p.channel
	p.mu.Unlock()

	err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", routingKey, err)
	}

	return nil
}

func (p *publisher) closeLocked() error {
	var errs []error

	if p.channel != nil && !p.channel.IsClosed() {
		errs = append(errs, p.channel.Close())
	}

	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}

	p.channel = nil
	p.conn = nil

	return errors.Join(errs...)
}

func (p *publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closeLocked()
}
