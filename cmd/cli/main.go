package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avolkov/recondesk/internal/client/cli"
	"github.com/avolkov/recondesk/internal/client/config"
	"github.com/avolkov/recondesk/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Structured logs go to stderr so the interactive prompt stays clean.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
