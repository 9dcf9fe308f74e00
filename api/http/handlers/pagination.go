package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/fundi/pkg/apperr"
)

// parsePage reads page/limit; bad or missing values fall back to the
// defaults and the catalog clamps the rest.
func parsePage(c *fiber.Ctx, defLimit int) (page, limit int) {
	page, limit = 1, defLimit
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	return page, limit
}

// pathID parses a positive integer route parameter. Anything else cannot
// name a record, so it is reported as not found.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ErrNotFound
	}
	return id, nil
}

func queryInt64(c *fiber.Ctx, name string) (*int64, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, apperr.Validation(name + " must be an integer")
	}
	return &n, nil
}

func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, apperr.Validation(name + " must be a number")
	}
	return &f, nil
}

func queryBool(c *fiber.Ctx, name string) (*bool, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, apperr.Validation(name + " must be true or false")
	}
	return &b, nil
}

// timeLayouts are the accepted timestamp forms: full ISO-8601 and a bare date.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02"}

func parseTime(field string, v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*v)); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperr.Validation(field + " must be an ISO-8601 timestamp")
}
