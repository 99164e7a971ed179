package theme

import (
	"encoding/json"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Theme, error) {
	return s.repo.List()
}

// GetActive returns the theme the storefront should render with.
func (s *Service) GetActive() (Theme, error) {
	return s.repo.GetActive()
}

func (s *Service) Create(t Theme) (Theme, error) {
	if t.Name == "" {
		return Theme{}, ErrNameRequired
	}
	if len(t.Settings) == 0 {
		t.Settings = json.RawMessage(`{}`)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.repo.Create(t)
}

func (s *Service) Update(id string, t Theme) (Theme, error) {
	if t.Name == "" {
		return Theme{}, ErrNameRequired
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Theme{}, err
	}
	if len(t.Settings) == 0 {
		t.Settings = existing.Settings
	}
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, t)
}

func (s *Service) Activate(id string) error {
	return s.repo.SetActive(id)
}
