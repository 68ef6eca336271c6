package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/transport/events"
	"github.com/jbeshir/candidate-job-matching/internal/transport/schedule"
	"github.com/jbeshir/candidate-job-matching/internal/transport/web/router"
	"github.com/jbeshir/candidate-job-matching/internal/transport/web/server"
	"github.com/nats-io/nats.go"
)

type Component interface {
	Run(ctx context.Context) error
}

// Pipeline is the wired set of matching commands, shared by the long-running app
// and the one-shot binaries.
type Pipeline struct {
	Stores *Stores

	BuildQueue   *command.BuildMatchQueue
	ExpandPairs  *command.ExpandJobPairs
	EvaluatePair *command.EvaluatePair
	DrainBatch   *command.DrainMatchQueueBatch
	Rebuild      *command.RebuildMatchQueue
	CancelChain  *command.CancelDrainChain

	// DrainWorker runs drain chains in process. It is nil when EVENT_DRIVER is nats,
	// where each batch is published as an event instead.
	DrainWorker *schedule.DrainWorker

	// Events is the NATS connection, set only when EVENT_DRIVER is nats.
	Events *nats.Conn
}

// Close releases every connection the pipeline holds.
func (p *Pipeline) Close() error {
	var errs []error
	if p.Events != nil {
		if err := p.Events.Drain(); err != nil {
			errs = append(errs, fmt.Errorf("draining NATS connection: %w", err))
		}
	}
	if err := p.Stores.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func Setup(ctx context.Context) ([]Component, error) {
	pipeline, err := SetupPipeline(ctx)
	if err != nil {
		return nil, err
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		pipeline.Stores.Scores,
		router.FeedConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			ItemLimit:   MustGetEnvAsInt(ctx, "RSS_FEED_ITEM_LIMIT"),
		},
		MustGetEnvAsDuration(ctx, "MATCHES_CACHE_MAX_AGE"),
		authMiddleware,
		router.Commands{
			Rebuild:      pipeline.Rebuild,
			BuildQueue:   pipeline.BuildQueue,
			DrainBatch:   pipeline.DrainBatch,
			CancelChain:  pipeline.CancelChain,
			EvaluatePair: pipeline.EvaluatePair,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}

	if pipeline.DrainWorker != nil {
		components = append(components, pipeline.DrainWorker)
	}

	if pipeline.Events != nil {
		components = append(components, &events.Listener{
			Conn:         pipeline.Events,
			Rebuild:      pipeline.Rebuild,
			BuildQueue:   pipeline.BuildQueue,
			DrainBatch:   pipeline.DrainBatch,
			EvaluatePair: pipeline.EvaluatePair,
		})
	}

	// An empty DAILY_RUN_AT leaves rebuilds to an external scheduler.
	if runAt := MustGetEnvAsString(ctx, "DAILY_RUN_AT"); runAt != "" {
		at, err := schedule.ParseTimeOfDay(runAt)
		if err != nil {
			return nil, fmt.Errorf("parsing DAILY_RUN_AT: %w", err)
		}
		components = append(components, &schedule.Daily{
			Rebuild: pipeline.Rebuild,
			At:      at,
		})
	}

	return components, nil
}

// SetupPipeline connects every configured provider and store and wires the matching
// commands over them.
func SetupPipeline(ctx context.Context) (*Pipeline, error) {
	stores, err := SetupStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up stores: %w", err)
	}

	p, err := setupPipeline(ctx, stores)
	if err != nil {
		_ = stores.Close()
		return nil, err
	}
	return p, nil
}

func setupPipeline(ctx context.Context, stores *Stores) (*Pipeline, error) {
	p := &Pipeline{Stores: stores}

	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	judge, err := setupJudge(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up judge: %w", err)
	}

	selector, err := setupCandidateSelector(ctx, stores, embedder)
	if err != nil {
		return nil, fmt.Errorf("setting up candidate selector: %w", err)
	}

	p.EvaluatePair = command.NewEvaluatePair(
		stores.Profiles,
		stores.Profiles,
		embedder,
		judge,
		stores.Scores,
		setupSimilarityEngine(ctx),
		evaluatePairConfig(ctx),
	)

	var submitter command.PairSubmitter
	var scheduler command.DrainScheduler
	var worker *schedule.DrainWorker
	switch driver := MustGetEnvAsString(ctx, "EVENT_DRIVER"); driver {
	case "inline":
		worker = schedule.NewDrainWorker(schedule.DefaultDrainBacklog)
		submitter = p.EvaluatePair
		scheduler = worker
	case "nats":
		conn, err := events.Connect(MustGetEnvAsString(ctx, "NATS_URL"), "candidate-job-matching")
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}
		p.Events = conn
		publisher := events.NewPublisher(conn)
		submitter = publisher
		scheduler = publisher
	default:
		return nil, fmt.Errorf("unknown event driver [%s]", driver)
	}

	expandConfig, err := expandJobPairsConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing EVALUATION_COMBOS: %w", err)
	}

	p.BuildQueue = command.NewBuildMatchQueue(stores.Profiles, stores.Queue)
	p.ExpandPairs = command.NewExpandJobPairs(selector, submitter, expandConfig)
	p.DrainBatch = command.NewDrainMatchQueueBatch(
		stores.Queue,
		p.ExpandPairs,
		stores.Cancellations,
		scheduler,
		DefaultDrainMatchQueueBatchConfig(),
	)
	p.Rebuild = command.NewRebuildMatchQueue(p.BuildQueue, scheduler)
	p.CancelChain = command.NewCancelDrainChain(stores.Cancellations)

	if worker != nil {
		worker.Batch = p.DrainBatch
		p.DrainWorker = worker
	}

	return p, nil
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "trigger_token":
			token := MustGetEnvAsString(ctx, "TRIGGER_TOKEN")
			if token == "" {
				return nil, errors.New("TRIGGER_TOKEN must not be empty")
			}
			validators = append(validators, router.NewTriggerTokenValidator(token))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
