package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/candidate-job-matching/internal/app"
	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "match queue rebuild failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "match queue rebuild completed successfully")
}

func run(ctx context.Context) error {
	pipeline, err := app.SetupPipeline(ctx)
	if err != nil {
		return fmt.Errorf("setting up pipeline: %w", err)
	}
	defer func() { _ = pipeline.Close() }()

	result, err := pipeline.Rebuild.Execute(ctx, command.RebuildMatchQueueRequest{})
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "match queue rebuilt",
		"jobs_enqueued", result.JobsEnqueued,
		"chain_id", result.ChainID,
	)

	// With the nats event driver the drain chain runs in the listening app instances.
	if pipeline.DrainWorker == nil {
		return nil
	}

	invocations, err := pipeline.DrainWorker.RunPending(ctx)
	logger.InfoContext(ctx, "drain chain finished",
		"chain_id", result.ChainID,
		"invocations", invocations,
	)
	return err
}
