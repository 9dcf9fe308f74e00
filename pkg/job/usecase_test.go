package job_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/catalog"
	"github.com/artem13815/fundi/pkg/job"
	"github.com/artem13815/fundi/pkg/repository/memory"
)

func newRegistry(t *testing.T) (job.UseCase, *memory.JobRepository) {
	t.Helper()
	seed, err := catalog.LoadSeed("")
	require.NoError(t, err)
	store, err := catalog.NewStore(seed)
	require.NoError(t, err)
	repo := memory.NewJobRepository(memory.NewDB())
	return job.NewService(repo, catalog.NewService(store, nil)), repo
}

func fixTap() job.Job {
	return job.Job{
		ClientID: 1,
		Title:    "Fix tap",
		Category: "Plumbing",
		Location: "Nairobi West",
		Budget:   1000,
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)
	ctx := context.Background()

	in := fixTap()
	in.ID = 42
	in.Status = job.StatusCompleted
	in.WorkerID = ptr(int64(3))

	j, err := reg.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), j.ID)
	assert.Equal(t, job.StatusPending, j.Status)
	assert.Nil(t, j.WorkerID)
	assert.Nil(t, j.InvitedWorkerID)
	assert.WithinDuration(t, time.Now(), j.CreatedAt, time.Minute)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*job.Job)
	}{
		{"missing client", func(j *job.Job) { j.ClientID = 0 }},
		{"missing title", func(j *job.Job) { j.Title = "  " }},
		{"missing category", func(j *job.Job) { j.Category = "" }},
		{"unknown category", func(j *job.Job) { j.Category = "Astrology" }},
		{"missing location", func(j *job.Job) { j.Location = "" }},
		{"zero budget", func(j *job.Job) { j.Budget = 0 }},
		{"negative budget", func(j *job.Job) { j.Budget = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fixTap()
			tt.mutate(&in)
			_, err := reg.Create(ctx, in)
			assert.True(t, apperr.IsValidation(err), "got %v", err)
		})
	}

	all, err := reg.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)
	ctx := context.Background()

	const n = 10
	seen := map[int64]bool{}
	for i := 0; i < n; i++ {
		j, err := reg.Create(ctx, fixTap())
		require.NoError(t, err)
		seen[j.ID] = true
	}
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
	assert.Len(t, seen, n)
}

func TestInvite(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)
	ctx := context.Background()

	j, err := reg.Create(ctx, fixTap())
	require.NoError(t, err)

	invited, err := reg.Invite(ctx, j.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, invited.InvitedWorkerID)
	assert.Equal(t, int64(1), *invited.InvitedWorkerID)
	assert.Equal(t, job.StatusPending, invited.Status)
	assert.Nil(t, invited.WorkerID)

	_, err = reg.Invite(ctx, 999, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = reg.Invite(ctx, j.ID, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = reg.Invite(ctx, 999, 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = reg.Invite(ctx, j.ID, 0)
	assert.True(t, apperr.IsValidation(err), "got %v", err)
}

func TestUpdateNotFound(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)

	_, err := reg.Update(context.Background(), 999, job.Patch{Title: ptr("x")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateMergesFields(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)
	ctx := context.Background()

	j, err := reg.Create(ctx, fixTap())
	require.NoError(t, err)

	sched := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	got, err := reg.Update(ctx, j.ID, job.Patch{
		Title:         ptr("Fix two taps"),
		Budget:        ptr(1500.0),
		ScheduledDate: &sched,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fix two taps", got.Title)
	assert.Equal(t, 1500.0, got.Budget)
	assert.Equal(t, sched, *got.ScheduledDate)
	assert.Equal(t, "Nairobi West", got.Location)

	stored, err := reg.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestUpdateStatusMachine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		from job.Status
		to   job.Status
		ok   bool
	}{
		{job.StatusPending, job.StatusPending, true},
		{job.StatusPending, job.StatusCancelled, true},
		{job.StatusPending, job.StatusAccepted, false},
		{job.StatusPending, job.StatusInProgress, false},
		{job.StatusPending, job.StatusCompleted, false},
		{job.StatusAccepted, job.StatusInProgress, true},
		{job.StatusAccepted, job.StatusCompleted, true},
		{job.StatusAccepted, job.StatusPending, false},
		{job.StatusInProgress, job.StatusCompleted, true},
		{job.StatusInProgress, job.StatusCancelled, true},
		{job.StatusInProgress, job.StatusAccepted, false},
		{job.StatusCompleted, job.StatusInProgress, false},
		{job.StatusCompleted, job.StatusCancelled, false},
		{job.StatusCancelled, job.StatusPending, false},
		{job.StatusPending, job.Status("archived"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			reg, repo := newRegistry(t)
			j, err := reg.Create(ctx, fixTap())
			require.NoError(t, err)
			j.Status = tt.from
			require.NoError(t, repo.Save(ctx, j))

			_, err = reg.Update(ctx, j.ID, job.Patch{Status: ptr(tt.to), Title: ptr("renamed")})
			stored, getErr := reg.Get(ctx, j.ID)
			require.NoError(t, getErr)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, stored.Status)
				assert.Equal(t, "renamed", stored.Title)
				return
			}
			assert.True(t, apperr.IsValidation(err), "got %v", err)
			assert.Equal(t, tt.from, stored.Status)
			assert.Equal(t, "Fix tap", stored.Title)
		})
	}
}

func TestUpdateCompletedStampsDate(t *testing.T) {
	t.Parallel()
	reg, repo := newRegistry(t)
	ctx := context.Background()

	j, err := reg.Create(ctx, fixTap())
	require.NoError(t, err)
	j.Status = job.StatusInProgress
	require.NoError(t, repo.Save(ctx, j))

	got, err := reg.Update(ctx, j.ID, job.Patch{Status: ptr(job.StatusCompleted)})
	require.NoError(t, err)
	require.NotNil(t, got.CompletedDate)
	assert.WithinDuration(t, time.Now(), *got.CompletedDate, time.Minute)
}

func TestUpdateFieldValidation(t *testing.T) {
	t.Parallel()
	reg, repo := newRegistry(t)
	ctx := context.Background()

	j, err := reg.Create(ctx, fixTap())
	require.NoError(t, err)

	for name, p := range map[string]job.Patch{
		"blank title":      {Title: ptr(" ")},
		"zero budget":      {Budget: ptr(0.0)},
		"blank location":   {Location: ptr("")},
		"unknown category": {Category: ptr("Astrology")},
	} {
		_, err := reg.Update(ctx, j.ID, p)
		assert.True(t, apperr.IsValidation(err), "%s: got %v", name, err)
	}

	j.WorkerID = ptr(int64(1))
	j.Status = job.StatusAccepted
	require.NoError(t, repo.Save(ctx, j))
	_, err = reg.Update(ctx, j.ID, job.Patch{Category: ptr("Cleaning")})
	assert.True(t, apperr.IsValidation(err))
	_, err = reg.Update(ctx, j.ID, job.Patch{Category: ptr("Plumbing")})
	assert.NoError(t, err)
}

func TestListByClientAndWorker(t *testing.T) {
	t.Parallel()
	reg, repo := newRegistry(t)
	ctx := context.Background()

	a, err := reg.Create(ctx, fixTap())
	require.NoError(t, err)
	other := fixTap()
	other.ClientID = 2
	b, err := reg.Create(ctx, other)
	require.NoError(t, err)

	mine, err := reg.ListByClient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a.ID, mine[0].ID)

	_, err = job.AssignOnAcceptance(ctx, repo, b.ID, 1)
	require.NoError(t, err)
	assigned, err := reg.ListByWorker(ctx, 1)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, b.ID, assigned[0].ID)

	none, err := reg.ListByWorker(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAssignOnAcceptanceRequiresPending(t *testing.T) {
	t.Parallel()
	reg, repo := newRegistry(t)
	ctx := context.Background()

	j, err := reg.Create(ctx, fixTap())
	require.NoError(t, err)

	got, err := job.AssignOnAcceptance(ctx, repo, j.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAccepted, got.Status)
	assert.Equal(t, int64(1), *got.WorkerID)

	_, err = job.AssignOnAcceptance(ctx, repo, j.ID, 2)
	assert.True(t, apperr.IsValidation(err))
	_, err = job.AssignOnAcceptance(ctx, repo, 999, 2)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
