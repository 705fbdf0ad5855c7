package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/discipline/internal/app"
)

//	@title			Discipline Timer API
//	@version		1.0
//	@description	Work timer that turns focused minutes into reward balances

// @host		localhost:5000
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel); err != nil {
		log.Fatal().Err(err).Msg("discipline timer stopped")
	}
}

func run(ctx context.Context, cancel context.CancelFunc) error {
	application := app.New()
	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if err := application.Wait(ctx, cancel); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zap.L().Info("discipline timer stopped cleanly")
	return nil
}
