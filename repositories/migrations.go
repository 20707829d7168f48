package repositories

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"github.com/uplox/uploads-backend/infra"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

func RunMigrations(ctx context.Context, pgConfig infra.PgConfig, logger *slog.Logger) error {
	db, err := setupDbConnection(pgConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "error setting up goose dialect")
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "error running migrations")
	}

	return runRiverMigrations(ctx, pgConfig, logger)
}

func setupDbConnection(pgConfig infra.PgConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", pgConfig.GetConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "unable to ping database")
	}
	return db, nil
}

// the river job queue keeps its own schema, versioned by its own migrator
func runRiverMigrations(ctx context.Context, pgConfig infra.PgConfig, logger *slog.Logger) error {
	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(), 2)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return errors.Wrap(err, "error creating river migrator")
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return errors.Wrap(err, "error running river migrations")
	}
	for _, version := range res.Versions {
		logger.InfoContext(ctx, "Applied river migration", "version", version.Version)
	}
	return nil
}
