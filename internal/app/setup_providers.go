package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/anthropic"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/gemini"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/judgment"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/memory"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/mysql"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/openai"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/pinecone"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/rabbitmq"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/voyageai"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// Stores holds the persistent state the pipeline reads and writes.
type Stores struct {
	Profiles      datasources.ProfileRepository
	Scores        datasources.ScoreRepository
	Cancellations datasources.DrainChainCancellationRepository
	Queue         datasources.TaskQueue

	closers []func() error
}

func (s *Stores) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetupStores connects the profile, score and cancellation store selected by
// STORE_DRIVER and the task queue selected by QUEUE_DRIVER.
func SetupStores(ctx context.Context) (*Stores, error) {
	s := &Stores{}

	var db *sql.DB
	switch driver := MustGetEnvAsString(ctx, "STORE_DRIVER"); driver {
	case "mysql":
		var err error
		db, err = mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		s.closers = append(s.closers, db.Close)

		if EnvIsSet("MYSQL_AUTO_MIGRATE") && MustGetEnvAsBoolean(ctx, "MYSQL_AUTO_MIGRATE") {
			if err := mysql.Migrate(ctx, db); err != nil {
				_ = s.Close()
				return nil, fmt.Errorf("migrating MySQL schema: %w", err)
			}
		}

		repo := mysql.New(db)
		s.Profiles = repo
		s.Scores = repo
		s.Cancellations = repo
	case "memory":
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "using in-memory store, scores will not survive a restart")
		s.Profiles = memory.NewProfileStore()
		s.Scores = memory.NewScoreStore()
		s.Cancellations = memory.NewCancellations()
	default:
		return nil, fmt.Errorf("unknown store driver [%s]", driver)
	}

	queue, err := setupQueue(ctx, db, s)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("setting up task queue: %w", err)
	}
	s.Queue = queue

	return s, nil
}

func setupQueue(ctx context.Context, db *sql.DB, s *Stores) (datasources.TaskQueue, error) {
	queueName := datasources.DefaultQueueName
	if EnvIsSet("QUEUE_NAME") {
		queueName = MustGetEnvAsString(ctx, "QUEUE_NAME")
	}

	switch driver := MustGetEnvAsString(ctx, "QUEUE_DRIVER"); driver {
	case "mysql":
		if db == nil {
			return nil, errors.New("mysql queue driver requires the mysql store driver")
		}
		return mysql.NewQueue(db, queueName), nil
	case "rabbitmq":
		q, err := rabbitmq.Dial(MustGetEnvAsString(ctx, "RABBITMQ_URL"), queueName)
		if err != nil {
			return nil, fmt.Errorf("connecting to RabbitMQ: %w", err)
		}
		s.closers = append(s.closers, q.Close)
		return q, nil
	case "memory":
		return memory.NewQueue(), nil
	default:
		return nil, fmt.Errorf("unknown queue driver [%s]", driver)
	}
}

func embeddingDimension(ctx context.Context) int {
	if EnvIsSet("EMBEDDING_DIMENSION") {
		return MustGetEnvAsInt(ctx, "EMBEDDING_DIMENSION")
	}
	return domain.DefaultEmbeddingDimension
}

func setupSimilarityEngine(ctx context.Context) domain.SimilarityEngine {
	return domain.NewSimilarityEngine(embeddingDimension(ctx))
}

func setupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDER_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "voyageai":
		return voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			MustGetEnvAsString(ctx, "VOYAGEAI_MODEL"),
			embeddingDimension(ctx),
		), nil
	default:
		return nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}

func setupJudge(ctx context.Context) (datasources.SuitabilityJudge, error) {
	var generator judgment.TextGenerator

	switch driver := MustGetEnvAsString(ctx, "JUDGE_DRIVER"); driver {
	case "null":
		return datasources.NullJudge{}, nil
	case "gemini":
		model := ""
		if EnvIsSet("GEMINI_MODEL") {
			model = MustGetEnvAsString(ctx, "GEMINI_MODEL")
		}
		g, err := gemini.NewGenerator(ctx, MustGetEnvAsString(ctx, "GEMINI_API_KEY"), model)
		if err != nil {
			return nil, fmt.Errorf("creating gemini generator: %w", err)
		}
		generator = g
	case "openai":
		cfg := openai.Config{
			APIKey: MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			Model:  MustGetEnvAsString(ctx, "OPENAI_MODEL"),
		}
		if EnvIsSet("OPENAI_BASE_URL") {
			cfg.BaseURL = MustGetEnvAsString(ctx, "OPENAI_BASE_URL")
		}
		g, err := openai.NewGenerator(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating openai generator: %w", err)
		}
		generator = g
	case "anthropic":
		cfg := anthropic.Config{
			APIKey: MustGetEnvAsString(ctx, "ANTHROPIC_API_KEY"),
			Model:  MustGetEnvAsString(ctx, "ANTHROPIC_MODEL"),
		}
		if EnvIsSet("ANTHROPIC_MAX_TOKENS") {
			cfg.MaxTokens = MustGetEnvAsInt(ctx, "ANTHROPIC_MAX_TOKENS")
		}
		g, err := anthropic.NewGenerator(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating anthropic generator: %w", err)
		}
		generator = g
	default:
		return nil, fmt.Errorf("unknown judge driver [%s]", driver)
	}

	judge, err := judgment.NewJudge(generator)
	if err != nil {
		return nil, fmt.Errorf("creating judge: %w", err)
	}
	return judge, nil
}

func setupCandidateSelector(
	ctx context.Context,
	stores *Stores,
	embedder datasources.Embedder,
) (command.CandidateSelector, error) {
	switch selector := MustGetEnvAsString(ctx, "CANDIDATE_SELECTOR"); selector {
	case "opted_in":
		return command.NewOptedInCandidateSelector(stores.Profiles), nil
	case "proximity":
		proximity, err := setupProximityLister(ctx)
		if err != nil {
			return nil, err
		}
		return command.NewProximityCandidateSelector(
			stores.Profiles,
			embedder,
			proximity,
			proximityCandidateSelectorConfig(ctx),
		), nil
	default:
		return nil, fmt.Errorf("unknown candidate selector [%s]", selector)
	}
}

func setupProximityLister(ctx context.Context) (datasources.CandidateProximityLister, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "pinecone":
		namespace := "candidates"
		if EnvIsSet("PINECONE_NAMESPACE") {
			namespace = MustGetEnvAsString(ctx, "PINECONE_NAMESPACE")
		}
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
			namespace,
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}
