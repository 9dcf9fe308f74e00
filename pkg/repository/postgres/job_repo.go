package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/job"
)

var _ job.Repository = (*JobRepository)(nil)

// JobRepository stores jobs in PostgreSQL. Inside a unit of work Get takes
// a row lock so concurrent transitions on one job serialize.
type JobRepository struct {
	pool *pgxpool.Pool
	q    querier
	tx   bool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool, q: pool}
}

func txJobs(pool *pgxpool.Pool, tx pgx.Tx) *JobRepository {
	return &JobRepository{pool: pool, q: tx, tx: true}
}

const jobColumns = `id, client_id, worker_id, title, description, category, location, budget,
	deadline, status, created_at, scheduled_date, completed_date, invited_worker_id`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.q.QueryRow(ctx, `
INSERT INTO jobs (client_id, worker_id, title, description, category, location, budget,
	deadline, status, created_at, scheduled_date, completed_date, invited_worker_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id
`, j.ClientID, j.WorkerID, j.Title, j.Description, j.Category, j.Location, j.Budget,
		j.Deadline, string(j.Status), j.CreatedAt, j.ScheduledDate, j.CompletedDate, j.InvitedWorkerID)
	if err := row.Scan(&j.ID); err != nil {
		return job.Job{}, translate(err)
	}
	return j, nil
}

func (r *JobRepository) Get(ctx context.Context, id int64) (job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	if r.tx {
		query += ` FOR UPDATE`
	}
	j, err := scanJob(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return job.Job{}, translate(err)
	}
	return j, nil
}

func (r *JobRepository) Save(ctx context.Context, j job.Job) error {
	cmd, err := r.q.Exec(ctx, `
UPDATE jobs SET
	worker_id = $2, title = $3, description = $4, category = $5, location = $6, budget = $7,
	deadline = $8, status = $9, scheduled_date = $10, completed_date = $11, invited_worker_id = $12
WHERE id = $1
`, j.ID, j.WorkerID, j.Title, j.Description, j.Category, j.Location, j.Budget,
		j.Deadline, string(j.Status), j.ScheduledDate, j.CompletedDate, j.InvitedWorkerID)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	var (
		where []string
		args  []any
	)
	if f.ClientID != nil {
		args = append(args, *f.ClientID)
		where = append(where, "client_id = $"+strconv.Itoa(len(args)))
	}
	if f.WorkerID != nil {
		args = append(args, *f.WorkerID)
		where = append(where, "worker_id = $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) Atomic(ctx context.Context, fn func(job.Repository) error) error {
	if r.tx {
		return fn(r)
	}
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(txJobs(r.pool, tx))
	})
}

func scanJob(row pgx.Row) (job.Job, error) {
	var (
		j      job.Job
		status string
	)
	err := row.Scan(&j.ID, &j.ClientID, &j.WorkerID, &j.Title, &j.Description, &j.Category, &j.Location,
		&j.Budget, &j.Deadline, &status, &j.CreatedAt, &j.ScheduledDate, &j.CompletedDate, &j.InvitedWorkerID)
	if err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	j.CreatedAt = j.CreatedAt.UTC()
	j.Deadline = utcPtr(j.Deadline)
	j.ScheduledDate = utcPtr(j.ScheduledDate)
	j.CompletedDate = utcPtr(j.CompletedDate)
	return j, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
