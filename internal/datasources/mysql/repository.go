package mysql

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

var (
	_ datasources.ProfileRepository                = (*Repository)(nil)
	_ datasources.ScoreRepository                  = (*Repository)(nil)
	_ datasources.DrainChainCancellationRepository = (*Repository)(nil)
)

const (
	getJobQuery = `SELECT id, employer_id, active, title, description, embedding
FROM job_postings WHERE id = ?`

	getCandidateQuery = `SELECT id, opted_in, headline, summary, embedding
FROM candidates WHERE id = ?`

	cancelDrainChainQuery = `INSERT INTO match_drain_cancellations (chain_id, cancelled_at)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE cancelled_at = cancelled_at`

	isDrainChainCancelledQuery = `SELECT EXISTS(
SELECT 1 FROM match_drain_cancellations WHERE chain_id = ?)`
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ============================================
// Job postings and candidates
// ============================================

func (r *Repository) ListActiveJobDescriptors(ctx context.Context) ([]domain.JobDescriptor, error) {
	sb := sqlbuilder.Select("id", "employer_id")
	sb.From("job_postings")
	sb.Where(sb.Equal("active", true))
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running active jobs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	descriptors := []domain.JobDescriptor{}
	for rows.Next() {
		var d domain.JobDescriptor
		if err := rows.Scan(&d.JobID, &d.EmployerID); err != nil {
			return nil, fmt.Errorf("scanning active jobs: %w", err)
		}
		descriptors = append(descriptors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return descriptors, nil
}

func (r *Repository) GetJob(ctx context.Context, jobID string) (domain.JobPosting, error) {
	var (
		job         domain.JobPosting
		description sql.NullString
		embedding   []byte
	)
	err := r.db.QueryRowContext(ctx, getJobQuery, jobID).Scan(
		&job.ID, &job.EmployerID, &job.Active, &job.Title, &description, &embedding,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.JobPosting{}, fmt.Errorf("job [%s]: %w", jobID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.JobPosting{}, fmt.Errorf("fetching job [%s]: %w", jobID, err)
	}

	job.Description = description.String
	if job.Embedding, err = optionalVector(embedding); err != nil {
		return domain.JobPosting{}, fmt.Errorf("decoding embedding for job [%s]: %w", jobID, err)
	}

	return job, nil
}

func (r *Repository) ListOptedInCandidateIDs(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("id")
	sb.From("candidates")
	sb.Where(sb.Equal("opted_in", true))
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running opted in candidates query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning candidates: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ids, nil
}

func (r *Repository) GetCandidate(ctx context.Context, candidateID string) (domain.Candidate, error) {
	var (
		candidate domain.Candidate
		summary   sql.NullString
		embedding []byte
	)
	err := r.db.QueryRowContext(ctx, getCandidateQuery, candidateID).Scan(
		&candidate.ID, &candidate.OptedIn, &candidate.Headline, &summary, &embedding,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Candidate{}, fmt.Errorf("candidate [%s]: %w", candidateID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("fetching candidate [%s]: %w", candidateID, err)
	}

	candidate.Summary = summary.String
	if candidate.Embedding, err = optionalVector(embedding); err != nil {
		return domain.Candidate{}, fmt.Errorf("decoding embedding for candidate [%s]: %w", candidateID, err)
	}

	return candidate, nil
}

// ============================================
// Match scores
// ============================================

// UpsertMatchScore writes the combo's column pair on the (candidate, job) row,
// leaving other combos' columns untouched.
func (r *Repository) UpsertMatchScore(ctx context.Context, score domain.MatchScore) error {
	scoreCol, evaluatedAtCol, err := comboColumns(score.Combo)
	if err != nil {
		return err
	}

	ib := sqlbuilder.InsertInto("match_scores")
	ib.Cols("candidate_id", "job_id", scoreCol, evaluatedAtCol)
	ib.Values(score.CandidateID, score.JobID, score.Score, score.EvaluatedAt.UTC())
	ib.SQL(fmt.Sprintf("ON DUPLICATE KEY UPDATE %[1]s = VALUES(%[1]s), %[2]s = VALUES(%[2]s)",
		scoreCol, evaluatedAtCol))

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting %s score for candidate [%s] job [%s]: %w",
			score.Combo, score.CandidateID, score.JobID, err)
	}
	return nil
}

func (r *Repository) ListJobMatchScores(
	ctx context.Context, jobID string, combo domain.Combo, page, pageSize int,
) ([]domain.MatchScore, error) {
	scoreCol, evaluatedAtCol, err := comboColumns(combo)
	if err != nil {
		return nil, err
	}

	sb := sqlbuilder.Select("candidate_id", scoreCol, evaluatedAtCol)
	sb.From("match_scores")
	sb.Where(sb.Equal("job_id", jobID), sb.IsNotNull(scoreCol))
	sb.OrderBy(scoreCol+" DESC", "candidate_id")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running match scores query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	scores := []domain.MatchScore{}
	for rows.Next() {
		var (
			candidateID string
			value       float64
			evaluatedAt sql.NullTime
		)
		if err := rows.Scan(&candidateID, &value, &evaluatedAt); err != nil {
			return nil, fmt.Errorf("scanning match scores: %w", err)
		}
		scores = append(scores, domain.MatchScore{
			CandidateID: candidateID,
			JobID:       jobID,
			Combo:       combo,
			Score:       value,
			EvaluatedAt: evaluatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return scores, nil
}

// comboColumns maps a combo to its score and timestamp columns. Column names never
// come from caller input.
func comboColumns(combo domain.Combo) (scoreCol, evaluatedAtCol string, err error) {
	switch combo {
	case domain.ComboSemantic:
		return "evaluation_semantic", "evaluated_at_semantic", nil
	case domain.ComboSkills:
		return "evaluation_skills", "evaluated_at_skills", nil
	case domain.ComboHolistic:
		return "evaluation_holistic", "evaluated_at_holistic", nil
	default:
		return "", "", fmt.Errorf("%w [%s]", domain.ErrUnknownCombo, string(combo))
	}
}

// ============================================
// Drain chain cancellation
// ============================================

func (r *Repository) CancelDrainChain(ctx context.Context, chainID string) error {
	if _, err := r.db.ExecContext(ctx, cancelDrainChainQuery, chainID, time.Now().UTC()); err != nil {
		return fmt.Errorf("recording cancellation of drain chain [%s]: %w", chainID, err)
	}
	return nil
}

func (r *Repository) IsDrainChainCancelled(ctx context.Context, chainID string) (bool, error) {
	var cancelled bool
	if err := r.db.QueryRowContext(ctx, isDrainChainCancelledQuery, chainID).Scan(&cancelled); err != nil {
		return false, fmt.Errorf("checking cancellation of drain chain [%s]: %w", chainID, err)
	}
	return cancelled, nil
}

// Helper functions for binary vector serialization

func optionalVector(bytes []byte) ([]float32, error) {
	if len(bytes) == 0 {
		return nil, nil
	}
	return bytesToFloat32Slice(bytes)
}

func float32SliceToBytes(floats []float32) []byte {
	bytes := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes
}

func bytesToFloat32Slice(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("invalid byte length for float32 slice: %d", len(bytes))
	}
	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return floats, nil
}
