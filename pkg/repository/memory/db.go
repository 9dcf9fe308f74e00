// Package memory implements the marketplace repositories in process memory.
// All repositories built over one DB share a single lock, so a unit of work
// started from any of them is atomic across every collection.
package memory

import (
	"sync"

	"github.com/artem13815/fundi/pkg/application"
	"github.com/artem13815/fundi/pkg/job"
	"github.com/artem13815/fundi/pkg/review"
)

// DB holds the collections. Ids equal position+1 because records are never
// deleted.
type DB struct {
	mu sync.RWMutex

	jobs    []job.Job
	apps    []application.Application
	reviews []review.Review
}

// NewDB returns an empty DB.
func NewDB() *DB {
	return &DB{}
}

// Close drops all records.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.jobs, db.apps, db.reviews = nil, nil, nil
	return nil
}

// atomic runs fn under the write lock and restores every collection if fn
// fails.
func (db *DB) atomic(fn func() error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	jobs := append([]job.Job(nil), db.jobs...)
	apps := append([]application.Application(nil), db.apps...)
	reviews := append([]review.Review(nil), db.reviews...)
	if err := fn(); err != nil {
		db.jobs, db.apps, db.reviews = jobs, apps, reviews
		return err
	}
	return nil
}

// guard is embedded by the repositories. Inside a unit of work the lock is
// already held, so the helpers become no-ops.
type guard struct {
	db   *DB
	inTx bool
}

func (g guard) read() func() {
	if g.inTx {
		return func() {}
	}
	g.db.mu.RLock()
	return g.db.mu.RUnlock
}

func (g guard) write() func() {
	if g.inTx {
		return func() {}
	}
	g.db.mu.Lock()
	return g.db.mu.Unlock
}
