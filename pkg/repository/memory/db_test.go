package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/fundi/pkg/application"
	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/job"
	"github.com/artem13815/fundi/pkg/review"
)

func TestJobRepositorySequentialIDs(t *testing.T) {
	t.Parallel()
	repo := NewJobRepository(NewDB())
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		j, err := repo.Create(ctx, job.Job{Title: "t", Status: job.StatusPending})
		require.NoError(t, err)
		assert.Equal(t, want, j.ID)
	}

	_, err := repo.Get(ctx, 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repo.Get(ctx, 6)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Save(ctx, job.Job{ID: 99}), apperr.ErrNotFound)
}

func TestJobRepositoryListFilters(t *testing.T) {
	t.Parallel()
	repo := NewJobRepository(NewDB())
	ctx := context.Background()
	w := int64(7)

	_, _ = repo.Create(ctx, job.Job{ClientID: 1, Status: job.StatusPending})
	_, _ = repo.Create(ctx, job.Job{ClientID: 2, Status: job.StatusAccepted, WorkerID: &w})
	_, _ = repo.Create(ctx, job.Job{ClientID: 1, Status: job.StatusCompleted, WorkerID: &w})

	c := int64(1)
	byClient, err := repo.List(ctx, job.Filter{ClientID: &c})
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	byWorker, err := repo.List(ctx, job.Filter{WorkerID: &w})
	require.NoError(t, err)
	require.Len(t, byWorker, 2)
	assert.Equal(t, int64(2), byWorker[0].ID)
	assert.Equal(t, int64(3), byWorker[1].ID)

	pending, err := repo.List(ctx, job.Filter{Status: job.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestAtomicRollsBackOnError(t *testing.T) {
	t.Parallel()
	db := NewDB()
	jobs := NewJobRepository(db)
	apps := NewApplicationRepository(db)
	ctx := context.Background()

	j, err := jobs.Create(ctx, job.Job{Title: "original", Status: job.StatusPending})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = apps.Atomic(ctx, func(a application.Repository, jr job.Repository) error {
		j.Title = "changed"
		if err := jr.Save(ctx, j); err != nil {
			return err
		}
		if _, err := a.Create(ctx, application.Application{JobID: j.ID, WorkerID: 1}); err != nil {
			return err
		}
		if _, err := jr.Create(ctx, job.Job{Title: "extra"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)

	all, err := jobs.List(ctx, job.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	list, err := apps.List(ctx, application.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNestedAtomicReusesLock(t *testing.T) {
	t.Parallel()
	db := NewDB()
	jobs := NewJobRepository(db)
	ctx := context.Background()

	err := jobs.Atomic(ctx, func(outer job.Repository) error {
		return outer.Atomic(ctx, func(inner job.Repository) error {
			_, err := inner.Create(ctx, job.Job{Title: "nested"})
			return err
		})
	})
	require.NoError(t, err)

	got, err := jobs.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "nested", got.Title)
}

func TestApplicationRepositoryUniquePerWorker(t *testing.T) {
	t.Parallel()
	repo := NewApplicationRepository(NewDB())
	ctx := context.Background()

	_, err := repo.Create(ctx, application.Application{JobID: 1, WorkerID: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, application.Application{JobID: 1, WorkerID: 1})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	a, err := repo.Create(ctx, application.Application{JobID: 2, WorkerID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.ID)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	t.Parallel()
	repo := NewReviewRepository(NewDB())
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rv, err := repo.Create(ctx, review.Review{JobID: 1, Rating: 5})
			if err == nil {
				ids <- rv.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, n)

	list, err := repo.ListByJob(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, n)
}
