package review

import (
	"context"
	"time"
)

// UseCase is the review ledger.
type UseCase interface {
	Post(ctx context.Context, r Review) (Review, error)
	ListByJob(ctx context.Context, jobID int64) ([]Review, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// Post appends r as given. It does not check the job's status, the rating
// range or earlier reviews by the same author.
func (s *service) Post(ctx context.Context, r Review) (Review, error) {
	r.ID = 0
	r.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, r)
}

func (s *service) ListByJob(ctx context.Context, jobID int64) ([]Review, error) {
	return s.repo.ListByJob(ctx, jobID)
}
