package cmd

import (
	"context"

	"github.com/uplox/uploads-backend/repositories"
)

func RunMigrations() error {
	config := loadConfiguration()
	logger := newLogger(config)

	return repositories.RunMigrations(context.Background(), config.pgConfig, logger)
}
