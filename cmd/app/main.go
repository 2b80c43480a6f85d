package main

import (
	"hotelpos/config"
	"hotelpos/di"
	"hotelpos/helper"
	"hotelpos/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		log.Info().Msg("applying pending migrations")

		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	di.InitializeService().Serve()
}
