package di

import (
	"context"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/transport/consumer"
	"frontdesk/transport/http"
	"frontdesk/transport/scheduler"
)

// App bundles the HTTP server with the background workers that share its lifetime.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
	Consumer  *consumer.Checkout

	config *config.Config
	db     *postgres.Connection
	redis  *goRedis.Client
	kafka  kafka.Client
	otel   otel.Otel
}

func NewApp(
	server *http.HTTP,
	sweep *scheduler.Scheduler,
	checkout *consumer.Checkout,
	cfg *config.Config,
	db *postgres.Connection,
	redis *goRedis.Client,
	kafkaClient kafka.Client,
	otel otel.Otel,
) *App {
	return &App{
		HTTP:      server,
		Scheduler: sweep,
		Consumer:  checkout,
		config:    cfg,
		db:        db,
		redis:     redis,
		kafka:     kafkaClient,
		otel:      otel,
	}
}

// Run migrates, starts the workers and blocks serving HTTP. Workers are stopped before the
// connections they use are closed.
func (a *App) Run(ctx context.Context) error {
	if err := helper.AutoMigrate(a.config); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	a.Scheduler.Start(ctx)
	a.Consumer.Start(ctx)

	a.HTTP.OnShutdown(
		func(context.Context) error {
			a.Scheduler.Stop()
			a.Consumer.Stop()

			return nil
		},
		func(context.Context) error {
			return a.kafka.Close()
		},
		func(context.Context) error {
			return a.redis.Close()
		},
		func(context.Context) error {
			return a.db.Close()
		},
		a.otel.Shutdown,
	)

	log.Info().Str("app", a.config.App.Name).Msg("Application started")

	a.HTTP.Serve()

	return nil
}
