package review_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/fundi/pkg/repository/memory"
	"github.com/artem13815/fundi/pkg/review"
)

func TestPostAppendsUnconditionally(t *testing.T) {
	t.Parallel()
	svc := review.NewService(memory.NewReviewRepository(memory.NewDB()))
	ctx := context.Background()

	first, err := svc.Post(ctx, review.Review{ID: 50, JobID: 1, AuthorID: 1, Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.WithinDuration(t, time.Now(), first.CreatedAt, time.Minute)

	// same author, same job, out-of-range rating, job that does not exist
	second, err := svc.Post(ctx, review.Review{JobID: 1, AuthorID: 1, Rating: 11})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	_, err = svc.Post(ctx, review.Review{JobID: 999, AuthorID: 3, Rating: -1})
	require.NoError(t, err)

	list, err := svc.ListByJob(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Great", list[0].Comment)
	assert.Equal(t, 11, list[1].Rating)

	empty, err := svc.ListByJob(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
