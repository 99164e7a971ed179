package listing

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// reserved query parameters that are never treated as entity filters.
var reserved = map[string]bool{
	"search": true,
	"page":   true,
	"limit":  true,
}

// FromCtx parses the list parameters from the request query string.
// allowedFilters is the entity's filter whitelist; any other parameter is
// rejected with an UnknownFilterError so typos surface instead of being
// silently ignored.
func FromCtx(c *fiber.Ctx, allowedFilters ...string) (Query, error) {
	allowed := make(map[string]bool, len(allowedFilters))
	for _, k := range allowedFilters {
		allowed[k] = true
	}

	q := Query{
		Search:  c.Query("search"),
		Filters: map[string]string{},
		Page:    1,
		Limit:   DefaultLimit,
	}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, ErrInvalidPage
		}
		q.Page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, ErrInvalidLimit
		}
		q.Limit = n
	}

	for key, value := range c.Queries() {
		if reserved[key] || value == "" {
			continue
		}
		if !allowed[key] {
			return Query{}, &UnknownFilterError{Key: key}
		}
		q.Filters[key] = value
	}

	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}
