package cmd

import (
	"log/slog"

	"github.com/uplox/uploads-backend/infra"
	"github.com/uplox/uploads-backend/utils"
)

type AppConfiguration struct {
	env             string
	port            string
	bucketUrlScheme string
	pgConfig        infra.PgConfig
}

func loadConfiguration() AppConfiguration {
	return AppConfiguration{
		env:             utils.GetEnv("ENV", "development"),
		port:            utils.GetEnv("PORT", "8080"),
		bucketUrlScheme: utils.GetEnv("BUCKET_URL_SCHEME", "gs"),
		pgConfig: infra.PgConfig{
			ConnectionString:    utils.GetEnv("PG_CONNECTION_STRING", ""),
			Database:            utils.GetEnv("PG_DATABASE", "uploads"),
			DbConnectWithSocket: utils.GetEnv("PG_CONNECT_WITH_SOCKET", false),
			Hostname:            utils.GetEnv("PG_HOSTNAME", "localhost"),
			Password:            utils.GetEnv("PG_PASSWORD", ""),
			Port:                utils.GetEnv("PG_PORT", "5432"),
			User:                utils.GetEnv("PG_USER", "postgres"),
			MaxPoolConnections:  utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
			SslMode:             utils.GetEnv("PG_SSL_MODE", "prefer"),
		},
	}
}

func newLogger(config AppConfiguration) *slog.Logger {
	if config.env == "development" {
		return utils.NewLogger("text")
	}
	return utils.NewLogger("json")
}
