package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/fundi/pkg/application"
	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/job"
)

var _ application.Repository = (*ApplicationRepository)(nil)

// ApplicationRepository stores applications in PostgreSQL. The
// (job_id, worker_id) pair is unique and at most one row per job may be
// accepted; both are enforced by the schema.
type ApplicationRepository struct {
	pool *pgxpool.Pool
	q    querier
	tx   pgx.Tx
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool, q: pool}
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.q.QueryRow(ctx, `
INSERT INTO applications (job_id, worker_id, message, quote, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, a.JobID, a.WorkerID, a.Message, a.Quote, string(a.Status), a.CreatedAt)
	if err := row.Scan(&a.ID); err != nil {
		return application.Application{}, translate(err)
	}
	return a, nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id int64) (application.Application, error) {
	query := `SELECT id, job_id, worker_id, message, quote, status, created_at FROM applications WHERE id = $1`
	if r.tx != nil {
		query += ` FOR UPDATE`
	}
	a, err := scanApplication(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return application.Application{}, translate(err)
	}
	return a, nil
}

func (r *ApplicationRepository) Save(ctx context.Context, a application.Application) error {
	cmd, err := r.q.Exec(ctx, `
UPDATE applications SET message = $2, quote = $3, status = $4 WHERE id = $1
`, a.ID, a.Message, a.Quote, string(a.Status))
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context, f application.Filter) ([]application.Application, error) {
	var (
		where []string
		args  []any
	)
	if f.JobID != nil {
		args = append(args, *f.JobID)
		where = append(where, "job_id = $"+strconv.Itoa(len(args)))
	}
	if f.WorkerID != nil {
		args = append(args, *f.WorkerID)
		where = append(where, "worker_id = $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	query := `SELECT id, job_id, worker_id, message, quote, status, created_at FROM applications`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []application.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *ApplicationRepository) Atomic(ctx context.Context, fn func(application.Repository, job.Repository) error) error {
	if r.tx != nil {
		return fn(r, txJobs(r.pool, r.tx))
	}
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&ApplicationRepository{pool: r.pool, q: tx, tx: tx}, txJobs(r.pool, tx))
	})
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	if err := row.Scan(&a.ID, &a.JobID, &a.WorkerID, &a.Message, &a.Quote, &status, &a.CreatedAt); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}
