package user

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be ADMIN or TEAM")
)

// FilterKeys is the filter whitelist for the admin user list.
var FilterKeys = []string{"role"}

type Repository interface {
	List(q listing.Query) ([]User, int, error)
	GetByID(id string) (User, error)
	GetByEmail(email string) (User, error)
	Create(u User) (User, error)
	Update(id string, u User) (User, error)
	Delete(id string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]User, 0, len(seed))}
	for _, u := range seed {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		r.storage = append(r.storage, u)
	}
	return r
}

func (r *InMemoryRepository) List(q listing.Query) ([]User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]User, 0, len(r.storage))
	for _, u := range r.storage {
		if !listing.MatchSearch(q.Search, u.Email, u.FirstName, u.LastName) {
			continue
		}
		if v := q.Filter("role"); v != "" && u.Role != v {
			continue
		}
		matched = append(matched, u)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return listing.Window(matched, q), len(matched), nil
}

func (r *InMemoryRepository) GetByID(id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.storage {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.storage {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.storage = append(r.storage, u)
	return u, nil
}

func (r *InMemoryRepository) Update(id string, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			u.ID = id
			r.storage[i] = u
			return u, nil
		}
	}
	return User{}, ErrNotFound
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
