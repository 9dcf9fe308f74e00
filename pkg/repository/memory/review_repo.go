package memory

import (
	"context"

	"github.com/artem13815/fundi/pkg/review"
)

var _ review.Repository = (*ReviewRepository)(nil)

// ReviewRepository implements review.Repository over a DB.
type ReviewRepository struct {
	guard
}

func NewReviewRepository(db *DB) *ReviewRepository {
	return &ReviewRepository{guard{db: db}}
}

func (r *ReviewRepository) Create(_ context.Context, rv review.Review) (review.Review, error) {
	unlock := r.write()
	defer unlock()
	rv.ID = int64(len(r.db.reviews)) + 1
	r.db.reviews = append(r.db.reviews, rv)
	return rv, nil
}

func (r *ReviewRepository) ListByJob(_ context.Context, jobID int64) ([]review.Review, error) {
	unlock := r.read()
	defer unlock()
	out := make([]review.Review, 0)
	for _, rv := range r.db.reviews {
		if rv.JobID == jobID {
			out = append(out, rv)
		}
	}
	return out, nil
}
