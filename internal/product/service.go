package product

import (
	"time"

	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

// Service orchestrates product operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List runs the uniform list contract over products.
func (s *Service) List(q listing.Query) (listing.Result[Product], error) {
	if err := q.Validate(); err != nil {
		return listing.Result[Product]{}, err
	}
	items, total, err := s.repo.List(q)
	if err != nil {
		return listing.Result[Product]{}, err
	}
	return listing.NewResult(items, total, q), nil
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	if p.Name == "" {
		return Product{}, ErrNameRequired
	}
	if p.Price < 0 {
		return Product{}, ErrNegativePrice
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Product) (Product, error) {
	if p.Name == "" {
		return Product{}, ErrNameRequired
	}
	if p.Price < 0 {
		return Product{}, ErrNegativePrice
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	p.CreatedAt = existing.CreatedAt
	if p.Status == "" {
		p.Status = existing.Status
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
