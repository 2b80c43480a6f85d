package main

import (
	"context"

	"hotelpos/config"
	"hotelpos/di"
	"hotelpos/shared/constant"
	"hotelpos/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	users := di.InitializeSeeder()

	created, err := users.EnsureAdmin(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed the admin account")
	}

	if created {
		log.Info().Str("username", constant.ProtectedUsername).Msg("Admin account created")

		return
	}

	log.Info().Str("username", constant.ProtectedUsername).Msg("Admin account already present")
}
