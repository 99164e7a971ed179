package cart

import "sync"

// Store persists a serialized cart per browser session, the backend
// equivalent of the client's local-storage slot. The cart is read once per
// request and written back after every mutation.
type Store interface {
	Load(sessionID string) (Cart, error)
	Save(sessionID string, ct Cart) error
	Delete(sessionID string) error
}

// InMemoryStore is used for tests and local scenarios.
type InMemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{carts: make(map[string]Cart)}
}

// Load returns the session's cart, or an empty cart for an unknown
// session. A missing cart is not an error.
func (s *InMemoryStore) Load(sessionID string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ct, ok := s.carts[sessionID]
	if !ok {
		return Cart{}, nil
	}
	items := make([]LineItem, len(ct.Items))
	copy(items, ct.Items)
	return Cart{Items: items}, nil
}

func (s *InMemoryStore) Save(sessionID string, ct Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(ct.Items))
	copy(items, ct.Items)
	s.carts[sessionID] = Cart{Items: items}
	return nil
}

func (s *InMemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
