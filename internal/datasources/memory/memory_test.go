package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	q := NewQueue()

	_, ok, err := q.DequeueTask(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, q.EnqueueTasks(ctx, []domain.JobDescriptor{
		{JobID: "j1", EmployerID: "e1"},
		{JobID: "j2", EmployerID: "e1"},
	}))
	require.NoError(t, q.EnqueueTasks(ctx, []domain.JobDescriptor{{JobID: "j3", EmployerID: "e2"}}))
	assert.Equal(t, 3, q.Len())

	for _, want := range []string{"j1", "j2", "j3"} {
		got, ok, err := q.DequeueTask(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got.JobID)
	}

	_, ok, err = q.DequeueTask(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueue_EmptyJobIDIsMalformed(t *testing.T) {
	ctx := context.Background()
	q := NewQueue()
	require.NoError(t, q.EnqueueTasks(ctx, []domain.JobDescriptor{
		{EmployerID: "emp1"},
		{JobID: "job1", EmployerID: "emp1"},
	}))

	_, ok, err := q.DequeueTask(ctx)
	assert.True(t, ok)
	require.ErrorIs(t, err, datasources.ErrMalformedTask)

	task, ok, err := q.DequeueTask(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "job1", task.JobID)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_ConcurrentDequeueDeliversOnce(t *testing.T) {
	ctx := context.Background()
	q := NewQueue()

	var tasks []domain.JobDescriptor
	for i := range 500 {
		tasks = append(tasks, domain.JobDescriptor{JobID: fmt.Sprintf("job-%d", i)})
	}
	require.NoError(t, q.EnqueueTasks(ctx, tasks))

	var mu sync.Mutex
	seen := make(map[string]int)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				task, ok, err := q.DequeueTask(ctx)
				if err != nil || !ok {
					return
				}
				mu.Lock()
				seen[task.JobID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 500)
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %s delivered more than once", id)
	}
}

func TestScoreStore_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewScoreStore()

	first := domain.MatchScore{CandidateID: "c", JobID: "j", Combo: domain.ComboSkills, Score: 10}
	second := domain.MatchScore{CandidateID: "c", JobID: "j", Combo: domain.ComboSkills, Score: 20}
	require.NoError(t, s.UpsertMatchScore(ctx, first))
	require.NoError(t, s.UpsertMatchScore(ctx, second))

	assert.Equal(t, 1, s.Len())
	got, ok := s.Get("c", "j", domain.ComboSkills)
	require.True(t, ok)
	assert.Equal(t, 20.0, got.Score)
}

func TestScoreStore_RejectsUnknownCombo(t *testing.T) {
	s := NewScoreStore()
	err := s.UpsertMatchScore(context.Background(), domain.MatchScore{CandidateID: "c", JobID: "j", Combo: "bogus"})
	require.True(t, errors.Is(err, domain.ErrUnknownCombo))
	assert.Equal(t, 0, s.Len())
}

func TestScoreStore_ListJobMatchScores(t *testing.T) {
	ctx := context.Background()
	s := NewScoreStore()

	for _, score := range []domain.MatchScore{
		{CandidateID: "c1", JobID: "j1", Combo: domain.ComboSkills, Score: 40},
		{CandidateID: "c2", JobID: "j1", Combo: domain.ComboSkills, Score: 90},
		{CandidateID: "c3", JobID: "j1", Combo: domain.ComboSkills, Score: 65},
		{CandidateID: "c1", JobID: "j1", Combo: domain.ComboSemantic, Score: 99},
		{CandidateID: "c1", JobID: "j2", Combo: domain.ComboSkills, Score: 99},
	} {
		require.NoError(t, s.UpsertMatchScore(ctx, score))
	}

	page1, err := s.ListJobMatchScores(ctx, "j1", domain.ComboSkills, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "c2", page1[0].CandidateID)
	assert.Equal(t, "c3", page1[1].CandidateID)

	page2, err := s.ListJobMatchScores(ctx, "j1", domain.ComboSkills, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "c1", page2[0].CandidateID)

	page3, err := s.ListJobMatchScores(ctx, "j1", domain.ComboSkills, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestProfileStore(t *testing.T) {
	ctx := context.Background()
	s := NewProfileStore()
	s.PutJob(domain.JobPosting{ID: "j2", EmployerID: "e", Active: true})
	s.PutJob(domain.JobPosting{ID: "j1", EmployerID: "e", Active: true})
	s.PutJob(domain.JobPosting{ID: "j3", EmployerID: "e", Active: false})
	s.PutCandidate(domain.Candidate{ID: "c2", OptedIn: true})
	s.PutCandidate(domain.Candidate{ID: "c1", OptedIn: false})

	jobs, err := s.ListActiveJobDescriptors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.JobDescriptor{
		{JobID: "j1", EmployerID: "e"},
		{JobID: "j2", EmployerID: "e"},
	}, jobs)

	ids, err := s.ListOptedInCandidateIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, ids)

	_, err = s.GetJob(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetCandidate(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancellations(t *testing.T) {
	ctx := context.Background()
	c := NewCancellations()

	cancelled, err := c.IsDrainChainCancelled(ctx, "chain")
	require.NoError(t, err)
	assert.False(t, cancelled)

	require.NoError(t, c.CancelDrainChain(ctx, "chain"))
	cancelled, err = c.IsDrainChainCancelled(ctx, "chain")
	require.NoError(t, err)
	assert.True(t, cancelled)
}
