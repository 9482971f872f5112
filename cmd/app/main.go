package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	app := di.InitializeApp()

	if err := app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to run application")
	}
}
