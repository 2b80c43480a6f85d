package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"hotelpos/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection splits reads from writes. Both sides may point at the same pool.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  open(config, "read", config.DB.Postgres.Read),
		Write: open(config, "write", config.DB.Postgres.Write),
	}
}

// FromDB wraps a single pool as both the read and the write side.
func FromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

func (c *Connection) Close() {
	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read connection")
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close write connection")
		}
	}
}

// DSN renders endpoint as a postgres:// URL. The configured prefix is applied to the
// database name and the endpoint timezone becomes the session timezone.
func DSN(config *config.Config, endpoint config.PostgresEndpoint) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + config.DB.Postgres.Prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// open retries until the database answers. Running out of attempts stops the process.
func open(config *config.Config, role string, endpoint config.PostgresEndpoint) *sqlx.DB {
	pg := config.DB.Postgres
	dsn := DSN(config, endpoint)
	attempts := max(1, pg.MaxRetry)

	logger := log.With().
		Str("role", role).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", pg.Prefix+endpoint.Name).
		Logger()

	for attempt := 1; ; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)

			logger.Info().Msg("Connected to database")

			return db
		}

		if attempt >= attempts {
			logger.Fatal().Err(err).Int("attempts", attempt).Msg("Failed connecting to database")
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}
}
