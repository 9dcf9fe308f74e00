package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/catalog"
)

// Catalog is the subset of the catalog the registry validates against.
type Catalog interface {
	CategoryByName(ctx context.Context, name string) (catalog.Category, error)
	GetWorker(ctx context.Context, id int64) (catalog.WorkerProfile, error)
}

// UseCase is the job registry.
type UseCase interface {
	Create(ctx context.Context, j Job) (Job, error)
	Get(ctx context.Context, id int64) (Job, error)
	Invite(ctx context.Context, jobID, workerID int64) (Job, error)
	Update(ctx context.Context, id int64, p Patch) (Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	ListByClient(ctx context.Context, clientID int64) ([]Job, error)
	ListByWorker(ctx context.Context, workerID int64) ([]Job, error)
}

type service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) UseCase {
	return &service{repo: repo, catalog: catalog}
}

// Create stores a new pending job. Caller-supplied id, status, worker,
// invitation and timestamps other than deadline/scheduledDate are ignored.
func (s *service) Create(ctx context.Context, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Category = strings.TrimSpace(j.Category)
	j.Location = strings.TrimSpace(j.Location)
	switch {
	case j.ClientID <= 0:
		return Job{}, apperr.Validation("clientId is required")
	case j.Title == "":
		return Job{}, apperr.Validation("title is required")
	case j.Category == "":
		return Job{}, apperr.Validation("category is required")
	case j.Location == "":
		return Job{}, apperr.Validation("location is required")
	case j.Budget <= 0:
		return Job{}, apperr.Validation("budget must be greater than zero")
	}
	if err := s.checkCategory(ctx, j.Category); err != nil {
		return Job{}, err
	}

	j.ID = 0
	j.WorkerID = nil
	j.InvitedWorkerID = nil
	j.CompletedDate = nil
	j.Status = StatusPending
	j.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, j)
}

func (s *service) Get(ctx context.Context, id int64) (Job, error) {
	return s.repo.Get(ctx, id)
}

// Invite points the job at a candidate worker. It binds nothing.
func (s *service) Invite(ctx context.Context, jobID, workerID int64) (Job, error) {
	var out Job
	err := s.repo.Atomic(ctx, func(r Repository) error {
		j, err := r.Get(ctx, jobID)
		if err != nil {
			return err
		}
		if workerID <= 0 {
			return apperr.Validation("workerId is required")
		}
		if _, err := s.catalog.GetWorker(ctx, workerID); err != nil {
			return err
		}
		j.InvitedWorkerID = &workerID
		if err := r.Save(ctx, j); err != nil {
			return err
		}
		out = j
		return nil
	})
	return out, err
}

func (s *service) Update(ctx context.Context, id int64, p Patch) (Job, error) {
	if p.Category != nil {
		if err := s.checkCategory(ctx, strings.TrimSpace(*p.Category)); err != nil {
			return Job{}, err
		}
	}
	var out Job
	err := s.repo.Atomic(ctx, func(r Repository) error {
		j, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		merged, err := apply(j, p, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := r.Save(ctx, merged); err != nil {
			return err
		}
		out = merged
		return nil
	})
	return out, err
}

func (s *service) ListAll(ctx context.Context) ([]Job, error) {
	return s.repo.List(ctx, Filter{})
}

func (s *service) ListByClient(ctx context.Context, clientID int64) ([]Job, error) {
	return s.repo.List(ctx, Filter{ClientID: &clientID})
}

// ListByWorker returns jobs bound to the worker, whatever their status.
func (s *service) ListByWorker(ctx context.Context, workerID int64) ([]Job, error) {
	return s.repo.List(ctx, Filter{WorkerID: &workerID})
}

func (s *service) checkCategory(ctx context.Context, name string) error {
	if name == "" {
		return apperr.Validation("category cannot be empty")
	}
	if _, err := s.catalog.CategoryByName(ctx, name); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Validation(fmt.Sprintf("unknown category %q", name))
		}
		return err
	}
	return nil
}

// apply merges p into j and enforces the status machine.
func apply(j Job, p Patch, now time.Time) (Job, error) {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if t == "" {
			return Job{}, apperr.Validation("title cannot be empty")
		}
		j.Title = t
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Category != nil {
		c := strings.TrimSpace(*p.Category)
		if j.WorkerID != nil && c != j.Category {
			return Job{}, apperr.Validation("category cannot change once a worker is assigned")
		}
		j.Category = c
	}
	if p.Location != nil {
		l := strings.TrimSpace(*p.Location)
		if l == "" {
			return Job{}, apperr.Validation("location cannot be empty")
		}
		j.Location = l
	}
	if p.Budget != nil {
		if *p.Budget <= 0 {
			return Job{}, apperr.Validation("budget must be greater than zero")
		}
		j.Budget = *p.Budget
	}
	if p.Deadline != nil {
		d := p.Deadline.UTC()
		j.Deadline = &d
	}
	if p.ScheduledDate != nil {
		d := p.ScheduledDate.UTC()
		j.ScheduledDate = &d
	}
	if p.CompletedDate != nil {
		d := p.CompletedDate.UTC()
		j.CompletedDate = &d
	}
	if p.Status != nil {
		to := *p.Status
		if !to.Valid() {
			return Job{}, apperr.Validation(fmt.Sprintf("unknown status %q", to))
		}
		if !CanMove(j.Status, to) {
			return Job{}, moveError(j.Status, to)
		}
		if to == StatusCompleted && j.CompletedDate == nil {
			d := now
			j.CompletedDate = &d
		}
		j.Status = to
	}
	return j, nil
}

// AssignOnAcceptance binds workerID to a pending job and moves it to
// accepted. The application ledger calls it with the repository of its own
// unit of work; clients never reach it directly.
func AssignOnAcceptance(ctx context.Context, repo Repository, jobID, workerID int64) (Job, error) {
	j, err := repo.Get(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	if j.Status != StatusPending {
		return Job{}, apperr.Validation(fmt.Sprintf("job %d is %s, not open for acceptance", j.ID, j.Status))
	}
	j.WorkerID = &workerID
	j.Status = StatusAccepted
	if err := repo.Save(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}
