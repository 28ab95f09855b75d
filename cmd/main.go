package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battleship-sim/api"
	"github.com/saeidalz13/battleship-sim/internal/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	logger := api.NewLogger(os.Stderr, cfg.Stage)

	rp, err := api.NewRequestProcessor(
		api.WithStage(cfg.Stage),
		api.WithMaxPlacementRetries(cfg.MaxPlacementRetries),
		api.WithRepeatAttackRule(cfg.RepeatAttackRule),
		api.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("failed to create request processor", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rp.Run(ctx, os.Stdin, os.Stdout); err != nil {
		stop()
		logger.Fatal("simulation stopped", "err", err)
	}
}
