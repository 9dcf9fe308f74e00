package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/fundi/pkg/application"
	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/catalog"
	"github.com/artem13815/fundi/pkg/job"
	"github.com/artem13815/fundi/pkg/review"
	storage "github.com/artem13815/fundi/pkg/storage/postgres"
)

// testPool connects to TEST_DATABASE_URL, migrates, and truncates all tables.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := storage.Connect(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, storage.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE reviews, applications, jobs RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func pendingJob() job.Job {
	return job.Job{
		ClientID:  1,
		Title:     "Fix tap",
		Category:  "Plumbing",
		Location:  "Nairobi West",
		Budget:    1000,
		Status:    job.StatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestPostgresJobRoundTrip(t *testing.T) {
	pool := testPool(t)
	repo := NewJobRepository(pool)
	ctx := context.Background()

	in := pendingJob()
	deadline := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in.Deadline = &deadline
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	w := int64(5)
	got.WorkerID = &w
	got.Status = job.StatusAccepted
	require.NoError(t, repo.Save(ctx, got))

	list, err := repo.List(ctx, job.Filter{WorkerID: &w})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, job.StatusAccepted, list[0].Status)

	_, err = repo.Get(ctx, 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Save(ctx, job.Job{ID: 404, Status: job.StatusPending}), apperr.ErrNotFound)
}

func TestPostgresApplicationConflictAndRollback(t *testing.T) {
	pool := testPool(t)
	jobs := NewJobRepository(pool)
	apps := NewApplicationRepository(pool)
	ctx := context.Background()

	j, err := jobs.Create(ctx, pendingJob())
	require.NoError(t, err)

	a := application.Application{JobID: j.ID, WorkerID: 1, Quote: 900, Status: application.StatusPending, CreatedAt: time.Now().UTC()}
	_, err = apps.Create(ctx, a)
	require.NoError(t, err)
	_, err = apps.Create(ctx, a)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	err = apps.Atomic(ctx, func(ar application.Repository, jr job.Repository) error {
		locked, err := jr.Get(ctx, j.ID)
		if err != nil {
			return err
		}
		locked.Title = "changed"
		if err := jr.Save(ctx, locked); err != nil {
			return err
		}
		_, err = ar.Create(ctx, a)
		return err
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	got, err := jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix tap", got.Title)
}

func TestPostgresConcurrentAcceptHasOneWinner(t *testing.T) {
	pool := testPool(t)
	jobs := NewJobRepository(pool)
	apps := NewApplicationRepository(pool)
	ledger := application.NewService(apps, jobs, nil)
	ctx := context.Background()

	j, err := jobs.Create(ctx, pendingJob())
	require.NoError(t, err)

	var ids []int64
	for w := int64(1); w <= 4; w++ {
		a, err := apps.Create(ctx, application.Application{JobID: j.ID, WorkerID: w, Quote: 500, Status: application.StatusPending, CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		winner int64
		errs   []error
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := ledger.Accept(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			winner = id
		}(id)
	}
	wg.Wait()

	require.NotZero(t, winner)
	require.Len(t, errs, len(ids)-1)
	for _, err := range errs {
		assert.True(t, apperr.IsValidation(err), "got %v", err)
	}

	list, err := apps.List(ctx, application.Filter{JobID: &j.ID})
	require.NoError(t, err)
	for _, a := range list {
		if a.ID == winner {
			assert.Equal(t, application.StatusAccepted, a.Status)
			continue
		}
		assert.Equal(t, application.StatusRejected, a.Status)
	}

	got, err := jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAccepted, got.Status)
}

func TestPostgresDuplicateApplyKeepsIDsSequential(t *testing.T) {
	pool := testPool(t)
	jobs := NewJobRepository(pool)
	apps := NewApplicationRepository(pool)
	seed, err := catalog.LoadSeed("")
	require.NoError(t, err)
	store, err := catalog.NewStore(seed)
	require.NoError(t, err)
	ledger := application.NewService(apps, jobs, catalog.NewService(store, nil))
	ctx := context.Background()

	first, err := jobs.Create(ctx, pendingJob())
	require.NoError(t, err)
	second, err := jobs.Create(ctx, pendingJob())
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		conflicts int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.Apply(ctx, first.ID, 1, "", 900)
			if errors.Is(err, apperr.ErrConflict) {
				mu.Lock()
				conflicts++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, conflicts)

	next, err := ledger.Apply(ctx, second.ID, 1, "", 900)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestPostgresReviews(t *testing.T) {
	pool := testPool(t)
	repo := NewReviewRepository(pool)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, review.Review{JobID: 77, AuthorID: 1, Rating: 5, CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
	}
	list, err := repo.ListByJob(ctx, 77)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)

	empty, err := repo.ListByJob(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
