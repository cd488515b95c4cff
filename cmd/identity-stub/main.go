package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"identity_client/internal/config"
	"identity_client/internal/handlers"
	"identity_client/internal/logger"
	"identity_client/internal/repository"
	"identity_client/internal/repository/db"
	"identity_client/internal/server"
	"identity_client/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	if cfg.Auth.SigningKey == "" {
		log.Fatalw("auth.signing_key is required (or IDENTITY_AUTH_SIGNING_KEY)")
	}

	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, cfg.Auth.SigningKey, cfg.Auth.TokenTTL)
	apiHandler := handlers.NewHandler(services, log)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	go func() {
		log.Infow("identity stub listening", "addr", srv.Addr(), "db", cfg.DB.Path)
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// openDB initializes the SQLite user store.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	path := cfg.DB.Path
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", "identity.db")
		path = "identity.db"
	}
	return db.InitDB(path)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
