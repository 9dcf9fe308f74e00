package job

import (
	"context"
	"fmt"
	"time"

	"github.com/artem13815/fundi/pkg/catalog"
)

// SeedDemo loads demo fixtures into an empty repository and returns how many
// were written. A repository that already holds jobs is left alone, so
// restarting against a durable store does not duplicate the fixtures.
func SeedDemo(ctx context.Context, repo Repository, demos []catalog.DemoJob) (int, error) {
	if len(demos) == 0 {
		return 0, nil
	}
	n := 0
	err := repo.Atomic(ctx, func(r Repository) error {
		existing, err := r.List(ctx, Filter{})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		for i, d := range demos {
			j, err := fromDemo(d)
			if err != nil {
				return fmt.Errorf("demo job %d: %w", i+1, err)
			}
			if _, err := r.Create(ctx, j); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func fromDemo(d catalog.DemoJob) (Job, error) {
	st := Status(d.Status)
	if d.Status == "" {
		st = StatusPending
	}
	if !st.Valid() {
		return Job{}, fmt.Errorf("unknown status %q", d.Status)
	}
	j := Job{
		ClientID:    d.ClientID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Location:    d.Location,
		Budget:      d.Budget,
		Status:      st,
	}
	if d.WorkerID > 0 {
		w := d.WorkerID
		j.WorkerID = &w
	}

	created, err := demoTime(d.CreatedAt)
	if err != nil {
		return Job{}, err
	}
	if created == nil {
		now := time.Now().UTC()
		created = &now
	}
	j.CreatedAt = *created
	if j.Deadline, err = demoTime(d.Deadline); err != nil {
		return Job{}, err
	}
	if j.ScheduledDate, err = demoTime(d.ScheduledDate); err != nil {
		return Job{}, err
	}
	if j.CompletedDate, err = demoTime(d.CompletedDate); err != nil {
		return Job{}, err
	}
	return j, nil
}

func demoTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
