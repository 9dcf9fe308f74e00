package catalog

import "context"

// Category is a service category workers are listed under.
type Category struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// PortfolioItem is a past project shown on a worker profile.
type PortfolioItem struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}

// EmbeddedReview is a display copy of client feedback kept on the profile.
// It is not linked to the review ledger.
type EmbeddedReview struct {
	ID      int64   `json:"id" yaml:"id"`
	Client  string  `json:"client" yaml:"client"`
	Rating  float64 `json:"rating" yaml:"rating"`
	Comment string  `json:"comment" yaml:"comment"`
	Date    string  `json:"date" yaml:"date"`
}

// WorkerProfile describes a worker offering services in one category.
// Category is the name of the category referenced by CategoryID and is
// filled in when the catalog is built.
type WorkerProfile struct {
	ID          int64            `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	CategoryID  int64            `json:"categoryId" yaml:"categoryId"`
	Category    string           `json:"category" yaml:"-"`
	Location    string           `json:"location" yaml:"location"`
	HourlyRate  float64          `json:"hourlyRate" yaml:"hourlyRate"`
	Rating      float64          `json:"rating" yaml:"rating"`
	ReviewCount int              `json:"reviewCount" yaml:"reviewCount"`
	Skills      []string         `json:"skills" yaml:"skills"`
	Experience  string           `json:"experience" yaml:"experience"`
	Available   bool             `json:"available" yaml:"available"`
	Portfolio   []PortfolioItem  `json:"portfolio" yaml:"portfolio"`
	Reviews     []EmbeddedReview `json:"reviews" yaml:"reviews"`
}

// Filter narrows ListWorkers. Zero values mean "no filter".
type Filter struct {
	// Category is matched exactly against the category name.
	Category string
	// Location is matched as a case-sensitive substring.
	Location  string
	Available *bool
	MinRate   *float64
	MaxRate   *float64
	MinRating *float64
	// Skill matches any listed skill as whole words, with trade aliases
	// ("plumber" also finds "plumbing").
	Skill string
}

// Pagination describes the page returned by ListWorkers.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// WorkerPage is one page of filtered workers.
type WorkerPage struct {
	Workers    []WorkerProfile `json:"workers"`
	Pagination Pagination      `json:"pagination"`
}

// PageCache stores rendered worker pages. The catalog never changes at
// runtime, so entries are only evicted by TTL.
type PageCache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any) error
}
