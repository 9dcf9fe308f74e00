package memory

import (
	"context"

	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/job"
)

var _ job.Repository = (*JobRepository)(nil)

// JobRepository implements job.Repository over a DB.
type JobRepository struct {
	guard
}

func NewJobRepository(db *DB) *JobRepository {
	return &JobRepository{guard{db: db}}
}

func (r *JobRepository) Create(_ context.Context, j job.Job) (job.Job, error) {
	unlock := r.write()
	defer unlock()
	j.ID = int64(len(r.db.jobs)) + 1
	r.db.jobs = append(r.db.jobs, j)
	return j, nil
}

func (r *JobRepository) Get(_ context.Context, id int64) (job.Job, error) {
	unlock := r.read()
	defer unlock()
	if id < 1 || id > int64(len(r.db.jobs)) {
		return job.Job{}, apperr.ErrNotFound
	}
	return r.db.jobs[id-1], nil
}

func (r *JobRepository) Save(_ context.Context, j job.Job) error {
	unlock := r.write()
	defer unlock()
	if j.ID < 1 || j.ID > int64(len(r.db.jobs)) {
		return apperr.ErrNotFound
	}
	r.db.jobs[j.ID-1] = j
	return nil
}

func (r *JobRepository) List(_ context.Context, f job.Filter) ([]job.Job, error) {
	unlock := r.read()
	defer unlock()
	out := make([]job.Job, 0, len(r.db.jobs))
	for _, j := range r.db.jobs {
		if f.ClientID != nil && j.ClientID != *f.ClientID {
			continue
		}
		if f.WorkerID != nil && (j.WorkerID == nil || *j.WorkerID != *f.WorkerID) {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *JobRepository) Atomic(_ context.Context, fn func(job.Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	return r.db.atomic(func() error {
		return fn(&JobRepository{guard{db: r.db, inTx: true}})
	})
}
