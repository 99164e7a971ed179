// Package listing implements the pagination/search/filter contract shared
// by every admin list screen (products, orders, pages, customers, users).
// Each entity repository supplies the field whitelist; the query shape and
// the page math live here so they are implemented exactly once.
package listing

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultLimit = 10

var (
	// ErrInvalidLimit is returned when the caller supplies limit <= 0.
	// An explicit bad limit is rejected, never silently defaulted.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
	// ErrInvalidPage is returned when the caller supplies page < 1.
	ErrInvalidPage = errors.New("page must be >= 1")
)

// UnknownFilterError reports a filter key the entity does not support.
type UnknownFilterError struct {
	Key string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter %q", e.Key)
}

// IsInvalid reports whether err is a list-query validation error, the
// class handlers answer with 400 rather than 503.
func IsInvalid(err error) bool {
	var unknown *UnknownFilterError
	return errors.Is(err, ErrInvalidLimit) || errors.Is(err, ErrInvalidPage) || errors.As(err, &unknown)
}

// Query carries the uniform list parameters. Search is a case-insensitive
// substring match OR'd across the entity's whitelisted text fields; each
// filter is an equality condition AND'd into the predicate.
type Query struct {
	Search  string
	Filters map[string]string
	Page    int
	Limit   int
}

// Validate checks the pagination bounds. Pages past the last page are
// legal (they yield an empty result), page < 1 and limit < 1 are not.
func (q Query) Validate() error {
	if q.Limit < 1 {
		return ErrInvalidLimit
	}
	if q.Page < 1 {
		return ErrInvalidPage
	}
	return nil
}

// Offset returns the skip for the page window.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Filter returns the value for a filter key, empty when unset.
func (q Query) Filter(key string) string {
	return q.Filters[key]
}

// Result is the uniform list response: one page of items plus the total
// match count ignoring pagination.
type Result[T any] struct {
	Items     []T `json:"items"`
	Total     int `json:"total"`
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	PageCount int `json:"pageCount"`
}

// NewResult assembles a Result, computing PageCount from the total.
func NewResult[T any](items []T, total int, q Query) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:     items,
		Total:     total,
		Page:      q.Page,
		Limit:     q.Limit,
		PageCount: PageCount(total, q.Limit),
	}
}

// PageCount is ceil(total/limit) with a floor of 1, so an empty result
// still renders as a single (empty) page.
func PageCount(total, limit int) int {
	if limit < 1 {
		return 1
	}
	n := (total + limit - 1) / limit
	if n < 1 {
		n = 1
	}
	return n
}

// MatchSearch reports whether any field contains term, case-insensitively.
// An empty term matches everything.
func MatchSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Window slices one page out of an already filtered, already ordered
// slice. Pages past the end return an empty slice, not an error.
func Window[T any](items []T, q Query) []T {
	start := q.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + q.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
