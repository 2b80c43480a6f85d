package redis

import (
	"context"
	"net"

	"hotelpos/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary redis that backs the read cache, the rate limiter and the archive lock.
// The process does not start without it.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	addr := net.JoinHostPort(primary.Host, primary.Port)

	client := goRedis.NewClient(&goRedis.Options{
		Addr:        addr,
		Password:    primary.Password,
		DB:          primary.DB,
		PoolSize:    config.Cache.Redis.PoolSize,
		DialTimeout: config.Cache.Redis.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), config.Cache.Redis.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", addr).Int("db", primary.DB).Int("pool_size", config.Cache.Redis.PoolSize).Msg("Connected to Redis")

	return client
}
