package infra

import (
	"context"
	"fmt"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const DEFAULT_MAX_CONNECTIONS = 50

func NewPostgresConnectionPool(ctx context.Context, connectionString string, maxPoolConnections int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	if maxPoolConnections <= 0 {
		maxPoolConnections = DEFAULT_MAX_CONNECTIONS
	}
	cfg.MaxConns = int32(maxPoolConnections)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}
