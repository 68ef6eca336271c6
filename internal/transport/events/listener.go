package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/nats-io/nats.go"
)

type handlerFunc func(ctx context.Context, data []byte) any

// Listener subscribes to the matching subjects and runs the corresponding command
// for each message, replying when the message carries a reply subject.
type Listener struct {
	Conn         *nats.Conn
	Rebuild      command.Command[command.RebuildMatchQueueRequest, command.RebuildMatchQueueResult]
	BuildQueue   command.Command[command.BuildMatchQueueRequest, command.BuildMatchQueueResult]
	DrainBatch   command.Command[command.DrainMatchQueueBatchRequest, command.DrainMatchQueueBatchResult]
	EvaluatePair command.Command[command.EvaluatePairRequest, command.EvaluatePairResult]
}

func (l *Listener) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	handlers := map[string]handlerFunc{
		SubjectRebuildMatchQueue: l.handleRebuild,
		SubjectBuildQueue:        l.handleBuildQueue,
		SubjectDrainQueueBatch:   l.handleDrainQueueBatch,
		SubjectEvaluatePair:      l.handleEvaluatePair,
	}

	var subs []*nats.Subscription
	defer func() {
		for _, sub := range subs {
			if err := sub.Drain(); err != nil {
				logger.WarnContext(ctx, "failed to drain subscription", "subject", sub.Subject, "error", err)
			}
		}
	}()

	for subject, handler := range handlers {
		sub, err := l.Conn.QueueSubscribe(subject, QueueGroup, func(msg *nats.Msg) {
			l.dispatch(ctx, msg, handler)
		})
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		subs = append(subs, sub)
	}

	logger.InfoContext(ctx, "event listener started", "queue_group", QueueGroup)
	<-ctx.Done()
	logger.InfoContext(ctx, "event listener stopped")
	return nil
}

func (l *Listener) dispatch(ctx context.Context, msg *nats.Msg, handler handlerFunc) {
	logger := domain.LoggerFromContext(ctx).With("subject", msg.Subject)
	ctx = domain.ContextWithLogger(ctx, logger)

	reply := handler(ctx, msg.Data)
	if msg.Reply == "" {
		return
	}

	data, err := json.Marshal(reply)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode reply", "error", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		logger.WarnContext(ctx, "failed to send reply", "error", err)
	}
}

func (l *Listener) handleRebuild(ctx context.Context, _ []byte) any {
	result, err := l.Rebuild.Execute(ctx, command.RebuildMatchQueueRequest{})
	if err != nil {
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "rebuild failed", "error", err)
		return rebuildReply{JobsEnqueued: result.JobsEnqueued, Error: err.Error()}
	}
	return rebuildReply{Success: true, JobsEnqueued: result.JobsEnqueued, ChainID: result.ChainID}
}

func (l *Listener) handleBuildQueue(ctx context.Context, _ []byte) any {
	result, err := l.BuildQueue.Execute(ctx, command.BuildMatchQueueRequest{})
	if err != nil {
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "queue build failed", "error", err)
		return buildQueueReply{ActiveJobData: []domain.JobDescriptor{}, Error: err.Error()}
	}
	return buildQueueReply{Success: true, ActiveJobData: result.Jobs}
}

func (l *Listener) handleDrainQueueBatch(ctx context.Context, data []byte) any {
	var event drainQueueBatchEvent
	if len(data) > 0 {
		if err := json.Unmarshal(data, &event); err != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "malformed drain event", "error", err)
			return drainQueueBatchReply{Error: "malformed event"}
		}
	}

	result, err := l.DrainBatch.Execute(ctx, command.DrainMatchQueueBatchRequest{ChainID: event.ChainID})
	reply := drainQueueBatchReply{ProcessedCount: result.ProcessedCount, Rescheduled: result.Rescheduled}
	if err != nil {
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "drain batch failed", "error", err)
		reply.Error = err.Error()
	}
	return reply
}

func (l *Listener) handleEvaluatePair(ctx context.Context, data []byte) any {
	var pair domain.MatchPair
	if err := json.Unmarshal(data, &pair); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "malformed evaluate event", "error", err)
		return evaluatePairReply{Error: "malformed event"}
	}

	result, err := l.EvaluatePair.Execute(ctx, command.EvaluatePairRequest{Pair: pair})
	if err != nil {
		return evaluatePairReply{Error: err.Error()}
	}
	return evaluatePairReply{
		Success: true,
		Result:  evaluatePairResult{Evaluated: result.Evaluated, Score: result.Score},
	}
}

// Connect opens a NATS connection that retries indefinitely on disconnect.
func Connect(url, name string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return conn, nil
}
