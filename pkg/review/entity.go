package review

import (
	"context"
	"time"
)

// Review is feedback left on a job. Reviews are append-only.
type Review struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"jobId"`
	AuthorID  int64     `json:"authorId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository is the port for review persistence.
type Repository interface {
	Create(ctx context.Context, r Review) (Review, error)
	ListByJob(ctx context.Context, jobID int64) ([]Review, error)
}
