package order

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrEmailRequired = errors.New("customer email is required")
	ErrInvalidStatus = errors.New("invalid order status")
)

// FilterKeys is the filter whitelist for the admin order list.
var FilterKeys = []string{"status"}

type Repository interface {
	List(q listing.Query) ([]Order, int, error)
	GetByID(id string) (Order, error)
	Create(ord Order) (Order, error)
	Update(id string, ord Order) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Order, 0, len(seed))}
	for _, ord := range seed {
		if ord.ID == "" {
			ord.ID = uuid.NewString()
		}
		r.storage = append(r.storage, ord)
	}
	return r
}

func (r *InMemoryRepository) List(q listing.Query) ([]Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Order, 0, len(r.storage))
	for _, ord := range r.storage {
		if !listing.MatchSearch(q.Search, ord.Number, ord.CustomerEmail) {
			continue
		}
		if v := q.Filter("status"); v != "" && ord.Status != v {
			continue
		}
		matched = append(matched, ord)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return listing.Window(matched, q), len(matched), nil
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.storage {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) Update(id string, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			ord.ID = id
			r.storage[i] = ord
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}
