package realtime

//go:generate go run go.uber.org/mock/mockgen -source=./realtime.go -destination=./mocks/realtime_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/rabbitmq"
	"frontdesk/shared/constant"
)

const (
	EventOverstayFlagged      = "overstay.flagged"
	EventOverstayAcknowledged = "overstay.acknowledged"
	EventOverstayDismissed    = "overstay.dismissed"
	EventOverstayResolved     = "overstay.resolved"
	EventReservationUpdated   = "reservation.updated"
)

const (
	DriverKafka    = "kafka"
	DriverRedis    = "redis"
	DriverRabbitMQ = "rabbitmq"
	DriverLog      = "log"

	defaultChannelPrefix = "frontdesk.property"
)

type Meta struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
	Meta    Meta   `json:"meta"`
}

func NewEvent(eventType string, payload any, now time.Time) Event {
	return Event{
		Type:    eventType,
		Payload: payload,
		Meta: Meta{
			EventID:   uuid.NewString(),
			Timestamp: now.UTC(),
		},
	}
}

// Publisher delivers staff notifications to the per-property channel.
type Publisher interface {
	Publish(ctx context.Context, propertyID string, events ...Event) error
}

// Channel names the per-property destination, also used as routing key and message key.
func Channel(prefix, propertyID string) string {
	if prefix == "" {
		prefix = defaultChannelPrefix
	}

	return strings.TrimSuffix(prefix, ".") + "." + propertyID
}

type sender func(ctx context.Context, channel string, body []byte) error

type publisher struct {
	driver string
	prefix string
	send   sender
	otel   otel.Otel
}

func New(cfg *config.Config, redis *goRedis.Client, kafkaClient kafka.Client, otel otel.Otel) Publisher {
	p := &publisher{
		driver: cfg.Realtime.Driver,
		prefix: cfg.Realtime.ChannelPrefix,
		otel:   otel,
	}

	switch cfg.Realtime.Driver {
	case DriverKafka:
		topic := cfg.Kafka.Topic.Realtime
		p.send = func(ctx context.Context, channel string, body []byte) error {
			return kafkaClient.SendMessages(ctx, topic, kafka.Message{Key: channel, Value: json.RawMessage(body)})
		}
	case DriverRedis:
		p.send = func(ctx context.Context, channel string, body []byte) error {
			return redis.Publish(ctx, channel, body).Err()
		}
	case DriverRabbitMQ:
		p.send = rabbitmq.New(cfg).Publish
	default:
		p.driver = DriverLog
		p.send = logSender
	}

	log.Info().Str("driver", p.driver).Msg("Realtime publisher initialized")

	return p
}

func logSender(_ context.Context, channel string, body []byte) error {
	log.Info().Str("channel", channel).RawJSON("event", body).Msg("realtime event")

	return nil
}

func (p *publisher) Publish(ctx context.Context, propertyID string, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(&err)

	channel := Channel(p.prefix, propertyID)
	scope.SetAttribute("realtime.channel", channel)
	scope.SetAttribute("realtime.driver", p.driver)

	for _, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", event.Type, err)
		}

		err = p.send(ctx, channel, body)
		if err != nil {
			log.Error().Err(err).
				Str("property_id", propertyID).
				Str("event_type", event.Type).
				Str("driver", p.driver).
				Msg("failed to publish realtime event")

			return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
		}
	}

	return nil
}
