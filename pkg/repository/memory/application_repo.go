package memory

import (
	"context"

	"github.com/artem13815/fundi/pkg/application"
	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/job"
)

var _ application.Repository = (*ApplicationRepository)(nil)

// ApplicationRepository implements application.Repository over a DB.
type ApplicationRepository struct {
	guard
}

func NewApplicationRepository(db *DB) *ApplicationRepository {
	return &ApplicationRepository{guard{db: db}}
}

func (r *ApplicationRepository) Create(_ context.Context, a application.Application) (application.Application, error) {
	unlock := r.write()
	defer unlock()
	for _, existing := range r.db.apps {
		if existing.JobID == a.JobID && existing.WorkerID == a.WorkerID {
			return application.Application{}, apperr.ErrConflict
		}
	}
	a.ID = int64(len(r.db.apps)) + 1
	r.db.apps = append(r.db.apps, a)
	return a, nil
}

func (r *ApplicationRepository) Get(_ context.Context, id int64) (application.Application, error) {
	unlock := r.read()
	defer unlock()
	if id < 1 || id > int64(len(r.db.apps)) {
		return application.Application{}, apperr.ErrNotFound
	}
	return r.db.apps[id-1], nil
}

func (r *ApplicationRepository) Save(_ context.Context, a application.Application) error {
	unlock := r.write()
	defer unlock()
	if a.ID < 1 || a.ID > int64(len(r.db.apps)) {
		return apperr.ErrNotFound
	}
	r.db.apps[a.ID-1] = a
	return nil
}

func (r *ApplicationRepository) List(_ context.Context, f application.Filter) ([]application.Application, error) {
	unlock := r.read()
	defer unlock()
	out := make([]application.Application, 0, len(r.db.apps))
	for _, a := range r.db.apps {
		if f.JobID != nil && a.JobID != *f.JobID {
			continue
		}
		if f.WorkerID != nil && a.WorkerID != *f.WorkerID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *ApplicationRepository) Atomic(_ context.Context, fn func(application.Repository, job.Repository) error) error {
	if r.inTx {
		return fn(r, &JobRepository{r.guard})
	}
	return r.db.atomic(func() error {
		g := guard{db: r.db, inTx: true}
		return fn(&ApplicationRepository{g}, &JobRepository{g})
	})
}
