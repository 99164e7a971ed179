package page

import (
	"strings"
	"time"

	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(q listing.Query) (listing.Result[Page], error) {
	if err := q.Validate(); err != nil {
		return listing.Result[Page]{}, err
	}
	items, total, err := s.repo.List(q)
	if err != nil {
		return listing.Result[Page]{}, err
	}
	return listing.NewResult(items, total, q), nil
}

func (s *Service) GetByID(id string) (Page, error) {
	return s.repo.GetByID(id)
}

// GetPublishedBySlug is the storefront lookup: draft pages behave as if
// they do not exist.
func (s *Service) GetPublishedBySlug(slug string) (Page, error) {
	p, err := s.repo.GetBySlug(slug)
	if err != nil {
		return Page{}, err
	}
	if !p.Published {
		return Page{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(p Page) (Page, error) {
	if p.Title == "" {
		return Page{}, ErrTitleRequired
	}
	if p.Slug == "" {
		p.Slug = slugify(p.Title)
	}
	if existing, err := s.repo.GetBySlug(p.Slug); err == nil && existing.ID != "" {
		return Page{}, ErrSlugTaken
	} else if err != nil && err != ErrNotFound {
		return Page{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Page) (Page, error) {
	if p.Title == "" {
		return Page{}, ErrTitleRequired
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Page{}, err
	}
	if p.Slug == "" {
		p.Slug = existing.Slug
	}
	if other, err := s.repo.GetBySlug(p.Slug); err == nil && other.ID != id {
		return Page{}, ErrSlugTaken
	} else if err != nil && err != ErrNotFound {
		return Page{}, err
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	return strings.Join(strings.Fields(slug), "-")
}
