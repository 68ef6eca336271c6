package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/transport/web/controller"
)

// FeedConfig holds the settings for match RSS feeds.
type FeedConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
	ItemLimit   int
}

// Commands are the matching operations exposed over HTTP.
type Commands struct {
	Rebuild      command.Command[command.RebuildMatchQueueRequest, command.RebuildMatchQueueResult]
	BuildQueue   command.Command[command.BuildMatchQueueRequest, command.BuildMatchQueueResult]
	DrainBatch   command.Command[command.DrainMatchQueueBatchRequest, command.DrainMatchQueueBatchResult]
	CancelChain  command.Command[command.CancelDrainChainRequest, command.Empty]
	EvaluatePair command.Command[command.EvaluatePairRequest, command.EvaluatePairResult]
}

func MakeRouter(
	scores datasources.JobMatchScoreLister,
	feed FeedConfig,
	matchesCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	commands Commands,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/matching/rebuild", requireAuthMiddleware(controller.MatchingRebuild{
		RebuildCmd: commands.Rebuild,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/matching/build-queue", requireAuthMiddleware(controller.MatchingBuildQueue{
		BuildCmd: commands.BuildQueue,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/matching/drain", requireAuthMiddleware(controller.MatchingDrain{
		DrainCmd: commands.DrainBatch,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/matching/chains/{chain_id}/cancel", requireAuthMiddleware(controller.DrainChainCancel{
		CancelCmd: commands.CancelChain,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/matching/evaluate", requireAuthMiddleware(controller.PairEvaluate{
		EvaluateCmd: commands.EvaluatePair,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/jobs/{job_id}/matches", controller.JobMatchesList{
		Lister:      scores,
		CacheMaxAge: matchesCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/jobs/{job_id}/matches.rss", controller.JobMatchesRSS{
		FeedBaseURL:     feed.BaseURL,
		FeedAuthorName:  feed.AuthorName,
		FeedAuthorEmail: feed.AuthorEmail,
		Lister:          scores,
		ItemLimit:       feed.ItemLimit,
		CacheMaxAge:     matchesCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
