package category

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("category not found")
	ErrNameRequired = errors.New("category name is required")
)

type Repository interface {
	List() ([]Category, error)
	GetByID(id string) (Category, error)
	Create(cat Category) (Category, error)
	Update(id string, cat Category) (Category, error)
	Delete(id string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Category, 0, len(seed))}
	for _, cat := range seed {
		if cat.ID == "" {
			cat.ID = uuid.NewString()
		}
		r.storage = append(r.storage, cat)
	}
	return r
}

func (r *InMemoryRepository) List() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cat := range r.storage {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Create(cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	r.storage = append(r.storage, cat)
	return cat, nil
}

func (r *InMemoryRepository) Update(id string, cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			cat.ID = id
			r.storage[i] = cat
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
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
