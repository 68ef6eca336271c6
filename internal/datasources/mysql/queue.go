package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

var _ datasources.TaskQueue = (*Queue)(nil)

// enqueueChunkSize bounds the rows per INSERT so large seeds stay under max_allowed_packet.
const enqueueChunkSize = 500

const (
	claimTaskQuery = `SELECT id, payload FROM match_task_queue
WHERE queue_name = ?
ORDER BY id
LIMIT 1
FOR UPDATE SKIP LOCKED`

	deleteTaskQuery = `DELETE FROM match_task_queue WHERE id = ?`
)

// Queue is a FIFO task queue stored in the match_task_queue table, partitioned by queue name.
type Queue struct {
	db   *sql.DB
	name string
}

func NewQueue(db *sql.DB, name string) *Queue {
	return &Queue{db: db, name: name}
}

// EnqueueTasks inserts all tasks in one transaction.
func (q *Queue) EnqueueTasks(ctx context.Context, tasks []domain.JobDescriptor) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	enqueuedAt := time.Now().UTC()
	for start := 0; start < len(tasks); start += enqueueChunkSize {
		end := min(start+enqueueChunkSize, len(tasks))

		ib := sqlbuilder.InsertInto("match_task_queue")
		ib.Cols("queue_name", "payload", "enqueued_at")
		for _, task := range tasks[start:end] {
			payload, err := json.Marshal(task)
			if err != nil {
				return fmt.Errorf("encoding task for job [%s]: %w", task.JobID, err)
			}
			ib.Values(q.name, string(payload), enqueuedAt)
		}

		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting tasks %d-%d: %w", start, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// DequeueTask claims and deletes the oldest entry. Rows locked by another consumer's
// open transaction are skipped, so concurrent consumers never share an entry.
func (q *Queue) DequeueTask(ctx context.Context) (domain.JobDescriptor, bool, error) {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.JobDescriptor{}, false, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		id      int64
		payload []byte
	)
	err = tx.QueryRowContext(ctx, claimTaskQuery, q.name).Scan(&id, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.JobDescriptor{}, false, nil
	}
	if err != nil {
		return domain.JobDescriptor{}, false, fmt.Errorf("claiming task: %w", err)
	}

	if _, err := tx.ExecContext(ctx, deleteTaskQuery, id); err != nil {
		return domain.JobDescriptor{}, false, fmt.Errorf("deleting claimed task [%d]: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.JobDescriptor{}, false, fmt.Errorf("committing transaction: %w", err)
	}

	// The entry is gone either way; an undecodable payload must not block the queue.
	task, err := decodeTask(id, payload)
	if err != nil {
		return domain.JobDescriptor{}, true, err
	}

	return task, true, nil
}

func decodeTask(id int64, payload []byte) (domain.JobDescriptor, error) {
	var task domain.JobDescriptor
	if err := json.Unmarshal(payload, &task); err != nil {
		return domain.JobDescriptor{}, fmt.Errorf("%w [%d]: %w", datasources.ErrMalformedTask, id, err)
	}
	if task.JobID == "" {
		return domain.JobDescriptor{}, fmt.Errorf("%w [%d]: missing jd_id", datasources.ErrMalformedTask, id)
	}
	return task, nil
}
