package product

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrNameRequired  = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price must not be negative")
)

// FilterKeys is the filter whitelist for the admin product list.
var FilterKeys = []string{"categoryId", "status"}

// Repository defines persistence operations for products. List applies
// the uniform search/filter/pagination contract and returns the page plus
// the total match count ignoring pagination.
type Repository interface {
	List(q listing.Query) ([]Product, int, error)
	GetByID(id string) (Product, error)
	Create(p Product) (Product, error)
	Update(id string, p Product) (Product, error)
	Delete(id string) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Status == "" {
			p.Status = StatusActive
		}
		r.storage = append(r.storage, p)
	}
	return r
}

func (r *InMemoryRepository) List(q listing.Query) ([]Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		if !listing.MatchSearch(q.Search, p.Name, p.SKU, p.Description) {
			continue
		}
		if v := q.Filter("status"); v != "" && p.Status != v {
			continue
		}
		if v := q.Filter("categoryId"); v != "" && (p.CategoryID == nil || *p.CategoryID != v) {
			continue
		}
		matched = append(matched, p)
	}
	// newest first; stable so same-timestamp seeds keep insertion order
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return listing.Window(matched, q), len(matched), nil
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id string, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
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
