package user

import (
	"time"

	"github.com/zsherman2510/shop-themes-backend/internal/listing"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(q listing.Query) (listing.Result[User], error) {
	if err := q.Validate(); err != nil {
		return listing.Result[User]{}, err
	}
	users, total, err := s.repo.List(q)
	if err != nil {
		return listing.Result[User]{}, err
	}
	for i := range users {
		users[i] = sanitizeUser(users[i])
	}
	return listing.NewResult(users, total, q), nil
}

func (s *Service) GetByID(id string) (User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	return sanitizeUser(u), nil
}

func (s *Service) Create(u User) (User, error) {
	if !validRole(u.Role) {
		return User{}, ErrInvalidRole
	}
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	if u.Password != "" && !looksLikeBcrypt(u.Password) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		u.Password = string(hashed)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	u.CreatedAt = now
	u.UpdatedAt = now
	created, err := s.repo.Create(u)
	if err != nil {
		return User{}, err
	}
	return sanitizeUser(created), nil
}

func (s *Service) Update(id string, u User) (User, error) {
	if !validRole(u.Role) {
		return User{}, ErrInvalidRole
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	if u.Password == "" {
		u.Password = existing.Password
	} else if !looksLikeBcrypt(u.Password) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		u.Password = string(hashed)
	}

	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	updated, err := s.repo.Update(id, u)
	if err != nil {
		return User{}, err
	}
	return sanitizeUser(updated), nil
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// Authenticate verifies the email/password pair and returns the user with
// the password hash intact for claim building; callers must sanitize
// before rendering.
func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
