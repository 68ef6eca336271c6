package app

import (
	"context"
	"time"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// DefaultEvaluatePairConfig returns the default config for pair evaluation.
func DefaultEvaluatePairConfig() command.EvaluatePairConfig {
	return command.EvaluatePairConfig{
		ProviderTimeout: 30 * time.Second,
	}
}

// DefaultExpandJobPairsConfig returns the default config for pair expansion.
func DefaultExpandJobPairsConfig() command.ExpandJobPairsConfig {
	return command.ExpandJobPairsConfig{
		Combos:      domain.AllCombos,
		Concurrency: 8,
	}
}

// DefaultDrainMatchQueueBatchConfig returns the default config for queue draining.
func DefaultDrainMatchQueueBatchConfig() command.DrainMatchQueueBatchConfig {
	return command.DrainMatchQueueBatchConfig{
		BatchSize: command.DefaultDrainBatchSize,
	}
}

// DefaultProximityCandidateSelectorConfig returns the default config for proximity prefiltering.
func DefaultProximityCandidateSelectorConfig() command.ProximityCandidateSelectorConfig {
	return command.ProximityCandidateSelectorConfig{
		MinSimilarity:   0.3,
		Limit:           200,
		ProviderTimeout: 30 * time.Second,
	}
}

// evaluatePairConfig applies PROVIDER_TIMEOUT over the defaults.
func evaluatePairConfig(ctx context.Context) command.EvaluatePairConfig {
	cfg := DefaultEvaluatePairConfig()
	if EnvIsSet("PROVIDER_TIMEOUT") {
		cfg.ProviderTimeout = MustGetEnvAsDuration(ctx, "PROVIDER_TIMEOUT")
	}
	return cfg
}

// expandJobPairsConfig applies EVALUATION_CONCURRENCY and EVALUATION_COMBOS over the defaults.
func expandJobPairsConfig(ctx context.Context) (command.ExpandJobPairsConfig, error) {
	cfg := DefaultExpandJobPairsConfig()
	if EnvIsSet("EVALUATION_CONCURRENCY") {
		cfg.Concurrency = MustGetEnvAsInt(ctx, "EVALUATION_CONCURRENCY")
	}
	if EnvIsSet("EVALUATION_COMBOS") {
		combos, err := domain.ParseCombos(MustGetEnvAsStrings(ctx, "EVALUATION_COMBOS"))
		if err != nil {
			return command.ExpandJobPairsConfig{}, err
		}
		cfg.Combos = combos
	}
	return cfg, nil
}

// proximityCandidateSelectorConfig applies PROXIMITY_MIN_SIMILARITY, PROXIMITY_LIMIT and
// PROVIDER_TIMEOUT over the defaults.
func proximityCandidateSelectorConfig(ctx context.Context) command.ProximityCandidateSelectorConfig {
	cfg := DefaultProximityCandidateSelectorConfig()
	if EnvIsSet("PROVIDER_TIMEOUT") {
		cfg.ProviderTimeout = MustGetEnvAsDuration(ctx, "PROVIDER_TIMEOUT")
	}
	if EnvIsSet("PROXIMITY_MIN_SIMILARITY") {
		cfg.MinSimilarity = MustGetEnvAsFloat(ctx, "PROXIMITY_MIN_SIMILARITY")
	}
	if EnvIsSet("PROXIMITY_LIMIT") {
		cfg.Limit = MustGetEnvAsInt(ctx, "PROXIMITY_LIMIT")
	}
	return cfg
}
