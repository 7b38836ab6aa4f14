package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/mockinterview/internal/cli"
	"github.com/dmitrijs2005/mockinterview/internal/config"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel).With("run_id", uuid.NewString())

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "close failed", "error", err)
		}
	}()

	app.Run(ctx)
}
