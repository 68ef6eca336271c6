package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// MessagePublisher is the subset of *nats.Conn used to emit events.
type MessagePublisher interface {
	Publish(subject string, data []byte) error
}

var (
	_ command.DrainScheduler = (*Publisher)(nil)
	_ command.PairSubmitter  = (*Publisher)(nil)
)

// Publisher hands drain continuations and pair evaluations to whichever replica
// picks up the event.
type Publisher struct {
	Conn MessagePublisher
}

func NewPublisher(conn MessagePublisher) *Publisher {
	return &Publisher{Conn: conn}
}

func (p *Publisher) ScheduleDrain(ctx context.Context, chainID string) error {
	return p.publish(ctx, SubjectDrainQueueBatch, drainQueueBatchEvent{ChainID: chainID})
}

func (p *Publisher) SubmitPair(ctx context.Context, pair domain.MatchPair) error {
	return p.publish(ctx, SubjectEvaluatePair, pair)
}

func (p *Publisher) publish(ctx context.Context, subject string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", subject, err)
	}

	if err := p.Conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing %s event: %w", subject, err)
	}
	return nil
}
