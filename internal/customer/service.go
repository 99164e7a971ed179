package customer

import (
	"time"

	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(q listing.Query) (listing.Result[Customer], error) {
	if err := q.Validate(); err != nil {
		return listing.Result[Customer]{}, err
	}
	items, total, err := s.repo.List(q)
	if err != nil {
		return listing.Result[Customer]{}, err
	}
	return listing.NewResult(items, total, q), nil
}

func (s *Service) GetByID(id string) (Customer, error) {
	return s.repo.GetByID(id)
}

// Ensure returns the customer for the email, creating the record on first
// sight. Checkout calls this when an order completes.
func (s *Service) Ensure(email, name string) (Customer, error) {
	if email == "" {
		return Customer{}, ErrEmailRequired
	}
	existing, err := s.repo.GetByEmail(email)
	if err == nil {
		return existing, nil
	}
	if err != ErrNotFound {
		return Customer{}, err
	}
	return s.repo.Create(Customer{
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// RecordOrder bumps the customer's order count after a completed checkout.
func (s *Service) RecordOrder(id string) error {
	return s.repo.IncrementOrderCount(id)
}
