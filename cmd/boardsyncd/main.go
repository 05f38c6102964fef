package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/narmatov/boardsync/internal/adapter"
	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/internal/service"
	"github.com/narmatov/boardsync/internal/store"
	"github.com/narmatov/boardsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("boardsyncd")
	cfg, err := config.GetDaemonConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.LogToFile {
		log = logger.NewFileLogger("boardsyncd")
	}

	remote, err := adapter.NewHTTPRemoteClient(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote client")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, remote, remote, nil, cfg.Sync, log)

	ws := workers.NewWorkers(
		workers.NewSyncWorker(services.SyncJob, cfg.Remote.UserID, cfg.Workers),
		workers.NewCleanupWorker(services.SoftDelete, cfg.Workers, cfg.Sync.CleanupAge, log),
	)
	ws.Run()
	log.Info().Msg("boardsync daemon started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down...")
	ws.Stop()
	services.Queue.Shutdown()
	log.Info().Msg("boardsync daemon stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
