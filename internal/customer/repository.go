package customer

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

var (
	ErrNotFound      = errors.New("customer not found")
	ErrEmailRequired = errors.New("customer email is required")
)

// FilterKeys is the filter whitelist for the admin customer list.
var FilterKeys = []string{"hasOrders"}

type Repository interface {
	List(q listing.Query) ([]Customer, int, error)
	GetByID(id string) (Customer, error)
	GetByEmail(email string) (Customer, error)
	Create(cust Customer) (Customer, error)
	IncrementOrderCount(id string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Customer
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Customer, 0, len(seed))}
	for _, cust := range seed {
		if cust.ID == "" {
			cust.ID = uuid.NewString()
		}
		r.storage = append(r.storage, cust)
	}
	return r
}

func (r *InMemoryRepository) List(q listing.Query) ([]Customer, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Customer, 0, len(r.storage))
	for _, cust := range r.storage {
		if !listing.MatchSearch(q.Search, cust.Email, cust.Name) {
			continue
		}
		switch q.Filter("hasOrders") {
		case "true":
			if cust.OrderCount == 0 {
				continue
			}
		case "false":
			if cust.OrderCount > 0 {
				continue
			}
		}
		matched = append(matched, cust)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return listing.Window(matched, q), len(matched), nil
}

func (r *InMemoryRepository) GetByID(id string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cust := range r.storage {
		if cust.ID == id {
			return cust, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cust := range r.storage {
		if cust.Email == email {
			return cust, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) Create(cust Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cust.ID == "" {
		cust.ID = uuid.NewString()
	}
	r.storage = append(r.storage, cust)
	return cust, nil
}

func (r *InMemoryRepository) IncrementOrderCount(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].OrderCount++
			return nil
		}
	}
	return ErrNotFound
}
