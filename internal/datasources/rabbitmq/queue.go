// Package rabbitmq implements the task queue on a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

var _ datasources.TaskQueue = (*Queue)(nil)

// Queue publishes and pulls job descriptors on a durable queue. Publishing uses a
// transactional channel so a batch is enqueued entirely or not at all.
type Queue struct {
	conn *amqp.Connection
	name string

	publishMu sync.Mutex
	publishCh *amqp.Channel

	getMu sync.Mutex
	getCh *amqp.Channel
}

func Dial(url, queueName string) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to RabbitMQ: %w", err)
	}

	q, err := newQueue(conn, queueName)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return q, nil
}

func newQueue(conn *amqp.Connection, queueName string) (*Queue, error) {
	publishCh, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("opening publish channel: %w", err)
	}

	if _, err := publishCh.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declaring queue [%s]: %w", queueName, err)
	}

	if err := publishCh.Tx(); err != nil {
		return nil, fmt.Errorf("enabling transactions on publish channel: %w", err)
	}

	getCh, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("opening get channel: %w", err)
	}

	return &Queue{
		conn:      conn,
		name:      queueName,
		publishCh: publishCh,
		getCh:     getCh,
	}, nil
}

func (q *Queue) EnqueueTasks(ctx context.Context, tasks []domain.JobDescriptor) error {
	if len(tasks) == 0 {
		return nil
	}

	q.publishMu.Lock()
	defer q.publishMu.Unlock()

	for _, task := range tasks {
		body, err := encodeTask(task)
		if err != nil {
			return errors.Join(err, q.publishCh.TxRollback())
		}

		if err := q.publishCh.PublishWithContext(ctx, "", q.name, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		}); err != nil {
			return errors.Join(
				fmt.Errorf("publishing task for job [%s]: %w", task.JobID, err),
				q.publishCh.TxRollback(),
			)
		}
	}

	if err := q.publishCh.TxCommit(); err != nil {
		return fmt.Errorf("committing publish transaction: %w", err)
	}

	return nil
}

func (q *Queue) DequeueTask(_ context.Context) (domain.JobDescriptor, bool, error) {
	q.getMu.Lock()
	defer q.getMu.Unlock()

	msg, ok, err := q.getCh.Get(q.name, false)
	if err != nil {
		return domain.JobDescriptor{}, false, fmt.Errorf("getting message from [%s]: %w", q.name, err)
	}
	if !ok {
		return domain.JobDescriptor{}, false, nil
	}

	task, decodeErr := decodeTask(msg.Body)
	if decodeErr != nil {
		if err := msg.Reject(false); err != nil {
			return domain.JobDescriptor{}, true, errors.Join(decodeErr, fmt.Errorf("rejecting message: %w", err))
		}
		return domain.JobDescriptor{}, true, decodeErr
	}

	if err := msg.Ack(false); err != nil {
		return domain.JobDescriptor{}, false, fmt.Errorf("acknowledging message: %w", err)
	}

	return task, true, nil
}

func (q *Queue) Close() error {
	return q.conn.Close()
}

func encodeTask(task domain.JobDescriptor) ([]byte, error) {
	body, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("encoding task for job [%s]: %w", task.JobID, err)
	}
	return body, nil
}

func decodeTask(body []byte) (domain.JobDescriptor, error) {
	var task domain.JobDescriptor
	if err := json.Unmarshal(body, &task); err != nil {
		return domain.JobDescriptor{}, fmt.Errorf("%w: %w", datasources.ErrMalformedTask, err)
	}
	if task.JobID == "" {
		return domain.JobDescriptor{}, fmt.Errorf("%w: missing jd_id", datasources.ErrMalformedTask)
	}
	return task, nil
}
