package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/catalog"
	"github.com/artem13815/fundi/pkg/job"
)

// Workers resolves worker profiles.
type Workers interface {
	GetWorker(ctx context.Context, id int64) (catalog.WorkerProfile, error)
}

// UseCase is the application ledger.
type UseCase interface {
	Apply(ctx context.Context, jobID, workerID int64, message string, quote float64) (Application, error)
	Accept(ctx context.Context, id int64) (Application, error)
	Reject(ctx context.Context, id int64) (Application, error)
	List(ctx context.Context, f ListFilter) ([]View, error)
}

type ledger struct {
	apps    Repository
	jobs    job.Repository
	workers Workers
}

func NewService(apps Repository, jobs job.Repository, workers Workers) UseCase {
	return &ledger{apps: apps, jobs: jobs, workers: workers}
}

// Apply records a pending application. Each worker may apply to a job once,
// only while the job is pending and only within the job's category.
func (l *ledger) Apply(ctx context.Context, jobID, workerID int64, message string, quote float64) (Application, error) {
	var out Application
	err := l.apps.Atomic(ctx, func(apps Repository, jobs job.Repository) error {
		j, err := jobs.Get(ctx, jobID)
		if err != nil {
			return err
		}
		if workerID <= 0 {
			return apperr.Validation("workerId is required")
		}
		if quote <= 0 {
			return apperr.Validation("quote must be greater than zero")
		}
		w, err := l.workers.GetWorker(ctx, workerID)
		if err != nil {
			return err
		}
		if j.Status != job.StatusPending {
			return apperr.Validation(fmt.Sprintf("job %d is %s and no longer takes applications", j.ID, j.Status))
		}
		if w.Category != j.Category {
			return apperr.Validation(fmt.Sprintf("worker category %q does not match job category %q", w.Category, j.Category))
		}
		existing, err := apps.List(ctx, Filter{JobID: &jobID, WorkerID: &workerID})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return fmt.Errorf("worker %d already applied to job %d: %w", workerID, jobID, apperr.ErrConflict)
		}
		out, err = apps.Create(ctx, Application{
			JobID:     jobID,
			WorkerID:  workerID,
			Message:   message,
			Quote:     quote,
			Status:    StatusPending,
			CreatedAt: time.Now().UTC(),
		})
		return err
	})
	return out, err
}

// Accept binds the applicant to the job and rejects every other pending
// application for it, all in one unit of work. Accepting an already
// accepted application returns it unchanged.
//
// The job is locked before any of its applications so concurrent accepts
// for one job queue on the job instead of on each other's rows.
func (l *ledger) Accept(ctx context.Context, id int64) (Application, error) {
	peek, err := l.apps.Get(ctx, id)
	if err != nil {
		return Application{}, err
	}

	var out Application
	err = l.apps.Atomic(ctx, func(apps Repository, jobs job.Repository) error {
		if _, err := jobs.Get(ctx, peek.JobID); err != nil {
			return err
		}
		a, err := apps.Get(ctx, id)
		if err != nil {
			return err
		}
		switch a.Status {
		case StatusAccepted:
			out = a
			return nil
		case StatusRejected:
			return apperr.Validation(fmt.Sprintf("application %d was rejected", a.ID))
		}

		if _, err := job.AssignOnAcceptance(ctx, jobs, a.JobID, a.WorkerID); err != nil {
			return err
		}
		a.Status = StatusAccepted
		if err := apps.Save(ctx, a); err != nil {
			return err
		}

		siblings, err := apps.List(ctx, Filter{JobID: &a.JobID, Status: StatusPending})
		if err != nil {
			return err
		}
		for _, s := range siblings {
			if s.ID == a.ID {
				continue
			}
			s.Status = StatusRejected
			if err := apps.Save(ctx, s); err != nil {
				return err
			}
		}
		out = a
		return nil
	})
	return out, err
}

// Reject declines a pending application. The job is never touched.
func (l *ledger) Reject(ctx context.Context, id int64) (Application, error) {
	var out Application
	err := l.apps.Atomic(ctx, func(apps Repository, _ job.Repository) error {
		a, err := apps.Get(ctx, id)
		if err != nil {
			return err
		}
		switch a.Status {
		case StatusRejected:
			out = a
			return nil
		case StatusAccepted:
			return apperr.Validation(fmt.Sprintf("application %d is already accepted", a.ID))
		}
		a.Status = StatusRejected
		if err := apps.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

func (l *ledger) List(ctx context.Context, f ListFilter) ([]View, error) {
	var owned map[int64]bool
	if f.ClientID != nil {
		jobs, err := l.jobs.List(ctx, job.Filter{ClientID: f.ClientID})
		if err != nil {
			return nil, err
		}
		owned = make(map[int64]bool, len(jobs))
		for _, j := range jobs {
			owned[j.ID] = true
		}
	}

	apps, err := l.apps.List(ctx, Filter{JobID: f.JobID})
	if err != nil {
		return nil, err
	}
	if owned != nil {
		kept := apps[:0]
		for _, a := range apps {
			if owned[a.JobID] {
				kept = append(kept, a)
			}
		}
		apps = kept
	}
	return l.hydrate(ctx, apps)
}

// hydrate joins each application with its job and worker display fields.
// A job or worker that cannot be found leaves the joined fields empty.
func (l *ledger) hydrate(ctx context.Context, apps []Application) ([]View, error) {
	jobs := make(map[int64]job.Job)
	workers := make(map[int64]catalog.WorkerProfile)
	out := make([]View, 0, len(apps))
	for _, a := range apps {
		j, ok := jobs[a.JobID]
		if !ok {
			fetched, err := l.jobs.Get(ctx, a.JobID)
			if err != nil && !errors.Is(err, apperr.ErrNotFound) {
				return nil, err
			}
			j = fetched
			jobs[a.JobID] = j
		}
		w, ok := workers[a.WorkerID]
		if !ok {
			fetched, err := l.workers.GetWorker(ctx, a.WorkerID)
			if err != nil && !errors.Is(err, apperr.ErrNotFound) {
				return nil, err
			}
			w = fetched
			workers[a.WorkerID] = w
		}
		out = append(out, View{
			Application: a,
			JobTitle:    j.Title,
			JobCategory: j.Category,
			JobLocation: j.Location,
			WorkerName:  w.Name,
		})
	}
	return out, nil
}
