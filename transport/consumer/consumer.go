package consumer

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/incident/model/dto"
	incidentService "frontdesk/internal/domains/incident/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
)

// Checkout resolves overstay incidents when the booking system reports a physical check-out.
type Checkout struct {
	kafka    kafka.Client
	incident incidentService.Incident
	cfg      *config.Config
	otel     otel.Otel

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(kafka kafka.Client, incident incidentService.Incident, cfg *config.Config, otel otel.Otel) *Checkout {
	return &Checkout{
		kafka:    kafka,
		incident: incident,
		cfg:      cfg,
		otel:     otel,
	}
}

func (c *Checkout) Start(ctx context.Context) {
	topic := c.cfg.Kafka.Topic.Checkout
	if !c.cfg.Overstay.CheckoutConsumer || topic == constant.Empty {
		log.Info().Msg("Check-out consumer disabled")

		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return
	}

	ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		log.Info().Str("topic", topic).Msg("Starting check-out consumer")

		if err := c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, topic, c.Handle); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Check-out consumer stopped")
		}
	}()
}

func (c *Checkout) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	c.wg.Wait()
}

// Handle processes one check-out event. Malformed events are dropped rather than retried.
func (c *Checkout) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelConsumerScopeName, constant.OtelConsumerScopeName+".checkout.Handle")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req, err := kafka.Decode[dto.ResolveCheckedOutRequest](msg)
	if err != nil {
		log.Warn().Err(err).Str("key", string(msg.Key)).Msg("dropping undecodable check-out event")

		return nil
	}

	if err := validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Str("key", string(msg.Key)).Msg("dropping invalid check-out event")

		return nil
	}

	resolved, err := c.incident.ResolveCheckedOut(ctx, req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Debug().
		Str("property_id", req.PropertyID).
		Str("reservation_id", req.ReservationID).
		Bool("resolved", resolved).
		Msg("check-out event handled")

	return nil
}
