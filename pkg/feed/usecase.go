// Package feed surfaces open jobs to a worker.
package feed

import (
	"context"
	"errors"
	"strings"

	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/catalog"
	"github.com/artem13815/fundi/pkg/job"
)

// Workers resolves worker profiles.
type Workers interface {
	GetWorker(ctx context.Context, id int64) (catalog.WorkerProfile, error)
}

// Jobs lists stored jobs.
type Jobs interface {
	List(ctx context.Context, f job.Filter) ([]job.Job, error)
}

// UseCase builds a worker's feed.
type UseCase interface {
	FeedFor(ctx context.Context, workerID int64) ([]job.Job, error)
}

type service struct {
	workers            Workers
	jobs               Jobs
	excludeUnavailable bool
}

// NewService returns the feed matcher. With excludeUnavailable set, workers
// marked unavailable get an empty feed.
func NewService(workers Workers, jobs Jobs, excludeUnavailable bool) UseCase {
	return &service{workers: workers, jobs: jobs, excludeUnavailable: excludeUnavailable}
}

// FeedFor returns pending jobs in the worker's category whose location
// contains the first word of the worker's location. Unknown workers get an
// empty feed. Jobs keep storage order.
func (s *service) FeedFor(ctx context.Context, workerID int64) ([]job.Job, error) {
	w, err := s.workers.GetWorker(ctx, workerID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return []job.Job{}, nil
		}
		return nil, err
	}
	if s.excludeUnavailable && !w.Available {
		return []job.Job{}, nil
	}

	pending, err := s.jobs.List(ctx, job.Filter{Status: job.StatusPending})
	if err != nil {
		return nil, err
	}
	area := regionToken(w.Location)
	out := make([]job.Job, 0, len(pending))
	for _, j := range pending {
		if j.Category == w.Category && strings.Contains(j.Location, area) {
			out = append(out, j)
		}
	}
	return out, nil
}

// regionToken is the first whitespace-delimited word of a location, or ""
// for a blank location (which then matches every job).
func regionToken(location string) string {
	fields := strings.Fields(location)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
