package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/fundi/pkg/review"
)

var _ review.Repository = (*ReviewRepository)(nil)

// ReviewRepository appends reviews to PostgreSQL.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rv review.Review) (review.Review, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO reviews (job_id, author_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, rv.JobID, rv.AuthorID, rv.Rating, rv.Comment, rv.CreatedAt)
	if err := row.Scan(&rv.ID); err != nil {
		return review.Review{}, translate(err)
	}
	return rv, nil
}

func (r *ReviewRepository) ListByJob(ctx context.Context, jobID int64) ([]review.Review, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, job_id, author_id, rating, comment, created_at
FROM reviews WHERE job_id = $1 ORDER BY id
`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []review.Review{}
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ID, &rv.JobID, &rv.AuthorID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		rv.CreatedAt = rv.CreatedAt.UTC()
		res = append(res, rv)
	}
	return res, rows.Err()
}
