package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/server"
)

func main() {
	// An interrupt while waiting for the database aborts startup.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	srv, err := server.NewServer(ctx)
	stop()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
