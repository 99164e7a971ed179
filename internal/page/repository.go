package page

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

var (
	ErrNotFound      = errors.New("page not found")
	ErrTitleRequired = errors.New("page title is required")
	ErrSlugTaken     = errors.New("page slug is already in use")
)

// FilterKeys is the filter whitelist for the admin page list.
var FilterKeys = []string{"published"}

type Repository interface {
	List(q listing.Query) ([]Page, int, error)
	GetByID(id string) (Page, error)
	GetBySlug(slug string) (Page, error)
	Create(p Page) (Page, error)
	Update(id string, p Page) (Page, error)
	Delete(id string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Page
}

func NewInMemoryRepository(seed []Page) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Page, 0, len(seed))}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.storage = append(r.storage, p)
	}
	return r
}

func (r *InMemoryRepository) List(q listing.Query) ([]Page, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Page, 0, len(r.storage))
	for _, p := range r.storage {
		if !listing.MatchSearch(q.Search, p.Title, p.Slug) {
			continue
		}
		if v := q.Filter("published"); v != "" && strconv.FormatBool(p.Published) != v {
			continue
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return listing.Window(matched, q), len(matched), nil
}

func (r *InMemoryRepository) GetByID(id string) (Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Page{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Page{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Page) (Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if existing.Slug == p.Slug {
			return Page{}, ErrSlugTaken
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id string, p Page) (Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if existing.Slug == p.Slug && existing.ID != id {
			return Page{}, ErrSlugTaken
		}
	}
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return Page{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
