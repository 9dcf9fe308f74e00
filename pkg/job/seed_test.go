package job_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/fundi/pkg/catalog"
	"github.com/artem13815/fundi/pkg/job"
	"github.com/artem13815/fundi/pkg/repository/memory"
)

func TestSeedDemo(t *testing.T) {
	t.Parallel()
	seed, err := catalog.LoadSeed("")
	require.NoError(t, err)
	repo := memory.NewJobRepository(memory.NewDB())
	ctx := context.Background()

	n, err := job.SeedDemo(ctx, repo, seed.DemoJobs)
	require.NoError(t, err)
	assert.Equal(t, len(seed.DemoJobs), n)

	first, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, first.Status)
	require.NotNil(t, first.WorkerID)
	assert.Equal(t, int64(1), *first.WorkerID)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), first.CreatedAt)

	again, err := job.SeedDemo(ctx, repo, seed.DemoJobs)
	require.NoError(t, err)
	assert.Zero(t, again)
	all, err := repo.List(ctx, job.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestSeedDemoRejectsBadFixtures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, d := range map[string]catalog.DemoJob{
		"status":    {Title: "x", Status: "archived"},
		"timestamp": {Title: "x", CreatedAt: "yesterday"},
	} {
		repo := memory.NewJobRepository(memory.NewDB())
		_, err := job.SeedDemo(ctx, repo, []catalog.DemoJob{{Title: "ok"}, d})
		assert.Error(t, err, name)
		all, err := repo.List(ctx, job.Filter{})
		require.NoError(t, err)
		assert.Empty(t, all, name)
	}
}
