package catalog

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/artem13815/fundi/pkg/apperr"
	"github.com/artem13815/fundi/pkg/nlp"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// UseCase is the read-only view over categories and worker profiles.
type UseCase interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CategoryByName(ctx context.Context, name string) (Category, error)
	GetWorker(ctx context.Context, id int64) (WorkerProfile, error)
	ListWorkers(ctx context.Context, f Filter, page, limit int) (WorkerPage, error)
}

// Store is the immutable in-process catalog. It is built once at start and
// only read afterwards, so it needs no locking.
type Store struct {
	categories []Category
	byName     map[string]Category
	workers    []WorkerProfile
	workerIdx  map[int64]int
}

// NewStore validates seed data and builds the catalog. Every worker must
// reference an existing category.
func NewStore(seed Seed) (*Store, error) {
	s := &Store{
		byName:    make(map[string]Category, len(seed.Categories)),
		workerIdx: make(map[int64]int, len(seed.Workers)),
	}
	byID := make(map[int64]Category, len(seed.Categories))
	for _, c := range seed.Categories {
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate category id %d", c.ID)
		}
		byID[c.ID] = c
		s.byName[c.Name] = c
		s.categories = append(s.categories, c)
	}
	for _, w := range seed.Workers {
		c, ok := byID[w.CategoryID]
		if !ok {
			return nil, fmt.Errorf("catalog: worker %d references unknown category %d", w.ID, w.CategoryID)
		}
		if _, dup := s.workerIdx[w.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate worker id %d", w.ID)
		}
		w.Category = c.Name
		s.workerIdx[w.ID] = len(s.workers)
		s.workers = append(s.workers, w)
	}
	return s, nil
}

type service struct {
	store *Store
	cache PageCache
}

// NewService returns the catalog use case. cache may be nil.
func NewService(store *Store, cache PageCache) UseCase {
	return &service{store: store, cache: cache}
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(s.store.categories))
	copy(out, s.store.categories)
	return out, nil
}

func (s *service) CategoryByName(ctx context.Context, name string) (Category, error) {
	c, ok := s.store.byName[name]
	if !ok {
		return Category{}, apperr.ErrNotFound
	}
	return c, nil
}

func (s *service) GetWorker(ctx context.Context, id int64) (WorkerProfile, error) {
	i, ok := s.store.workerIdx[id]
	if !ok {
		return WorkerProfile{}, apperr.ErrNotFound
	}
	return clone(s.store.workers[i]), nil
}

func (s *service) ListWorkers(ctx context.Context, f Filter, page, limit int) (WorkerPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	key := pageKey(f, page, limit)
	if s.cache != nil {
		var cached WorkerPage
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	var matched []WorkerProfile
	for _, w := range s.store.workers {
		if f.matches(w) {
			matched = append(matched, w)
		}
	}

	total := len(matched)
	offset := total
	if page-1 <= total/limit {
		offset = (page - 1) * limit
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit < total-offset {
		end = offset + limit
	}
	workers := make([]WorkerProfile, 0, end-offset)
	for _, w := range matched[offset:end] {
		workers = append(workers, clone(w))
	}

	res := WorkerPage{
		Workers: workers,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}
	if s.cache != nil {
		// a failed cache write only costs a recomputation
		_ = s.cache.Set(ctx, key, res)
	}
	return res, nil
}

func (f Filter) matches(w WorkerProfile) bool {
	if f.Category != "" && w.Category != f.Category {
		return false
	}
	if f.Location != "" && !strings.Contains(w.Location, f.Location) {
		return false
	}
	if f.Available != nil && w.Available != *f.Available {
		return false
	}
	if f.MinRate != nil && w.HourlyRate < *f.MinRate {
		return false
	}
	if f.MaxRate != nil && w.HourlyRate > *f.MaxRate {
		return false
	}
	if f.MinRating != nil && w.Rating < *f.MinRating {
		return false
	}
	if strings.TrimSpace(f.Skill) != "" && !nlp.MatchesAnySkill(w.Skills, f.Skill) {
		return false
	}
	return true
}

func pageKey(f Filter, page, limit int) string {
	raw := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%d|%d",
		f.Category, f.Location, boolPart(f.Available),
		floatPart(f.MinRate), floatPart(f.MaxRate), floatPart(f.MinRating),
		nlp.NormalizeText(f.Skill), page, limit)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("catalog:workers:%x", sum[:8])
}

func boolPart(b *bool) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprint(*b)
}

func floatPart(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

// clone copies the slice fields so callers cannot mutate the catalog.
func clone(w WorkerProfile) WorkerProfile {
	w.Skills = append([]string(nil), w.Skills...)
	w.Portfolio = append([]PortfolioItem(nil), w.Portfolio...)
	w.Reviews = append([]EmbeddedReview(nil), w.Reviews...)
	return w
}
