// Package events triggers matching work from NATS messages and publishes follow-up work as messages.
package events

import "github.com/jbeshir/candidate-job-matching/internal/domain"

const (
	SubjectRebuildMatchQueue = "rebuild-match-queue"
	SubjectBuildQueue        = "build-queue"
	SubjectDrainQueueBatch   = "drain-queue-batch"
	SubjectEvaluatePair      = "evaluate-pair"

	// QueueGroup makes each event be handled by a single subscribed replica.
	QueueGroup = "matching"
)

type drainQueueBatchEvent struct {
	ChainID string `json:"chain_id,omitempty"`
}

type rebuildReply struct {
	Success      bool   `json:"success"`
	JobsEnqueued int    `json:"jobsEnqueued"`
	ChainID      string `json:"chainId,omitempty"`
	Error        string `json:"error,omitempty"`
}

type buildQueueReply struct {
	Success       bool                   `json:"success"`
	ActiveJobData []domain.JobDescriptor `json:"activeJobData"`
	Error         string                 `json:"error,omitempty"`
}

type drainQueueBatchReply struct {
	ProcessedCount int    `json:"processedCount"`
	Rescheduled    bool   `json:"rescheduled"`
	Error          string `json:"error,omitempty"`
}

type evaluatePairResult struct {
	Evaluated bool     `json:"evaluated"`
	Score     *float64 `json:"score,omitempty"`
}

type evaluatePairReply struct {
	Success bool               `json:"success"`
	Result  evaluatePairResult `json:"result"`
	Error   string             `json:"error,omitempty"`
}
