package job

import (
	"context"
	"time"
)

// Status is the lifecycle position of a job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Job is a piece of work posted by a client.
// Category holds the category name and equals the bound worker's category
// once WorkerID is set.
type Job struct {
	ID              int64      `json:"id"`
	ClientID        int64      `json:"clientId"`
	WorkerID        *int64     `json:"workerId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Location        string     `json:"location"`
	Budget          float64    `json:"budget"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	ScheduledDate   *time.Time `json:"scheduledDate,omitempty"`
	CompletedDate   *time.Time `json:"completedDate,omitempty"`
	InvitedWorkerID *int64     `json:"invitedWorkerId,omitempty"`
}

// Patch lists the fields a caller may change through Update. Nil means
// "leave as is".
type Patch struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Category      *string    `json:"category"`
	Location      *string    `json:"location"`
	Budget        *float64   `json:"budget"`
	Deadline      *time.Time `json:"deadline"`
	Status        *Status    `json:"status"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
}

// Filter narrows List. Nil/empty fields are ignored.
type Filter struct {
	ClientID *int64
	WorkerID *int64
	Status   Status
}

// Repository is the port for job persistence. List returns jobs in creation
// order.
type Repository interface {
	// Create assigns the next id and stores j.
	Create(ctx context.Context, j Job) (Job, error)
	Get(ctx context.Context, id int64) (Job, error)
	Save(ctx context.Context, j Job) error
	List(ctx context.Context, f Filter) ([]Job, error)
	// Atomic runs fn as one unit of work. Reads made through the repository
	// passed to fn see a stable job row until fn returns; an error from fn
	// discards every write it made.
	Atomic(ctx context.Context, fn func(Repository) error) error
}
