// FILE: cmd/gridchess-server/main.go
// Package main implements the game server with a RESTful API and optional
// SQLite persistence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridchess/internal/service"
	"gridchess/internal/storage"
	"gridchess/internal/transport/http"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

const gracefulShutdownTimeout = time.Second * 5

func main() {
	var (
		apiHost     = flag.String("api-host", "localhost", "API server host")
		apiPort     = flag.Int("api-port", 8080, "API server port")
		dev         = flag.Bool("dev", false, "Development mode (relaxed rate limits, WAL journal)")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
	)
	flag.Parse()

	log.SetHandler(text.New(os.Stderr))
	if *dev {
		log.SetLevel(log.DebugLevel)
	}

	// 1. Initialize Storage (optional)
	var store *storage.Store
	if *storagePath != "" {
		log.WithField("path", *storagePath).Info("initializing persistent storage")
		var err error
		store, err = storage.NewStore(*storagePath, *dev)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize storage")
		}
		if err := store.InitDB(); err != nil {
			log.WithError(err).Fatal("failed to initialize schema")
		}
	} else {
		log.Info("persistent storage disabled (use -storage-path to enable)")
	}

	// 2. Initialize the Service with optional storage
	svc := service.New(store)

	// 3. Initialize the Fiber app
	app := http.NewFiberApp(svc, *dev)

	apiAddr := fmt.Sprintf("%s:%d", *apiHost, *apiPort)

	go func() {
		log.WithFields(log.Fields{
			"addr":    apiAddr,
			"dev":     *dev,
			"storage": *storagePath != "",
		}).Info("API server starting")
		log.Infof("endpoints: http://%s/api/v1/games", apiAddr)
		log.Infof("health: http://%s/health", apiAddr)

		if err := app.Listen(apiAddr); err != nil {
			log.WithError(err).Error("API server listen error")
		}
	}()

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	if err := svc.Close(); err != nil {
		log.WithError(err).Error("service close error")
	}

	log.Info("server exited")
}
