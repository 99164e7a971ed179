package theme

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("theme not found")
	ErrNoActive     = errors.New("no active theme")
	ErrNameRequired = errors.New("theme name is required")
)

type Repository interface {
	List() ([]Theme, error)
	GetActive() (Theme, error)
	GetByID(id string) (Theme, error)
	Create(t Theme) (Theme, error)
	Update(id string, t Theme) (Theme, error)
	// SetActive makes the given theme the single active one.
	SetActive(id string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Theme
}

func NewInMemoryRepository(seed []Theme) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Theme, 0, len(seed))}
	for _, t := range seed {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		r.storage = append(r.storage, t)
	}
	return r
}

func (r *InMemoryRepository) List() ([]Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Theme, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetActive() (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.storage {
		if t.Active {
			return t, nil
		}
	}
	return Theme{}, ErrNoActive
}

func (r *InMemoryRepository) GetByID(id string) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.storage {
		if t.ID == id {
			return t, nil
		}
	}
	return Theme{}, ErrNotFound
}

func (r *InMemoryRepository) Create(t Theme) (Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.storage = append(r.storage, t)
	return t, nil
}

func (r *InMemoryRepository) Update(id string, t Theme) (Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			t.ID = id
			t.Active = r.storage[i].Active
			r.storage[i] = t
			return t, nil
		}
	}
	return Theme{}, ErrNotFound
}

func (r *InMemoryRepository) SetActive(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for i := range r.storage {
		if r.storage[i].ID == id {
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	for i := range r.storage {
		r.storage[i].Active = r.storage[i].ID == id
	}
	return nil
}
