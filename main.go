package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/uplox/uploads-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the status and ingestion API server")
	shouldRunWorker := flag.Bool("worker", false, "Run the upload processing worker")
	flag.Parse()
	slog.Info("Starting uploads backend",
		slog.Bool("migrations", *shouldRunMigrations),
		slog.Bool("server", *shouldRunServer),
		slog.Bool("worker", *shouldRunWorker),
	)

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunWorker {
		if err := cmd.RunTaskQueueWorker(); err != nil {
			log.Fatal(err)
		}
	}
}
