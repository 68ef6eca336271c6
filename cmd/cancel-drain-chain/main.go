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

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <chain-id>\n", os.Args[0])
		os.Exit(2)
	}
	chainID := os.Args[1]

	if err := run(ctx, chainID); err != nil {
		logger.ErrorContext(ctx, "drain chain cancellation failed", "chain_id", chainID, "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "drain chain cancelled", "chain_id", chainID)
}

func run(ctx context.Context, chainID string) error {
	stores, err := app.SetupStores(ctx)
	if err != nil {
		return fmt.Errorf("setting up stores: %w", err)
	}
	defer func() { _ = stores.Close() }()

	_, err = command.NewCancelDrainChain(stores.Cancellations).Execute(ctx, command.CancelDrainChainRequest{
		ChainID: chainID,
	})
	return err
}
