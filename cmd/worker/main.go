package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotelpos/config"
	"hotelpos/di"
	"hotelpos/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("KAFKA_ENABLE must be true to run the archive worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Starting archive worker")

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Archive worker stopped with error")

		return
	}

	log.Info().Msg("Archive worker stopped")
}
