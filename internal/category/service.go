package category

import (
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(cat Category) (Category, error) {
	if cat.Name == "" {
		return Category{}, ErrNameRequired
	}
	if cat.Slug == "" {
		cat.Slug = Slugify(cat.Name)
	}
	cat.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(cat)
}

func (s *Service) Update(id string, cat Category) (Category, error) {
	if cat.Name == "" {
		return Category{}, ErrNameRequired
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Category{}, err
	}
	if cat.Slug == "" {
		cat.Slug = Slugify(cat.Name)
	}
	cat.CreatedAt = existing.CreatedAt
	return s.repo.Update(id, cat)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// Slugify lowercases and hyphenates a name for use in storefront URLs.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
