package application

import (
	"context"
	"time"

	"github.com/artem13815/fundi/pkg/job"
)

// Status of a worker's application to a job.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Application is a worker's offer to take a job for a quoted price.
type Application struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"jobId"`
	WorkerID  int64     `json:"workerId"`
	Message   string    `json:"message"`
	Quote     float64   `json:"quote"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// View is an application joined with display fields from its job and
// worker. The joined fields are resolved at read time and never stored.
type View struct {
	Application
	JobTitle    string `json:"jobTitle,omitempty"`
	JobCategory string `json:"jobCategory,omitempty"`
	JobLocation string `json:"jobLocation,omitempty"`
	WorkerName  string `json:"workerName,omitempty"`
}

// Filter narrows Repository.List. Nil/empty fields are ignored.
type Filter struct {
	JobID    *int64
	WorkerID *int64
	Status   Status
}

// ListFilter narrows UseCase.List. ClientID selects applications to any job
// owned by that client.
type ListFilter struct {
	JobID    *int64
	ClientID *int64
}

// Repository is the port for application persistence. List returns
// applications in creation order.
type Repository interface {
	// Create assigns the next id. A second application by the same worker to
	// the same job fails with apperr.ErrConflict.
	Create(ctx context.Context, a Application) (Application, error)
	Get(ctx context.Context, id int64) (Application, error)
	Save(ctx context.Context, a Application) error
	List(ctx context.Context, f Filter) ([]Application, error)
	// Atomic runs fn as one unit of work spanning applications and jobs.
	Atomic(ctx context.Context, fn func(apps Repository, jobs job.Repository) error) error
}
