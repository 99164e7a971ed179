package user

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateHashesPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo)

	created, err := svc.Create(User{Email: "admin@example.com", Password: "s3cret", Role: RoleAdmin})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Password != "" {
		t.Error("created user must not expose the password hash")
	}

	stored, err := repo.GetByEmail("admin@example.com")
	if err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Errorf("expected bcrypt hash, got %q", stored.Password)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")) != nil {
		t.Error("stored hash does not verify the original password")
	}
}

func TestCreateRejectsDuplicateEmailAndBadRole(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Create(User{Email: "a@example.com", Password: "x", Role: "OWNER"}); err != ErrInvalidRole {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}

	if _, err := svc.Create(User{Email: "a@example.com", Password: "x", Role: RoleTeam}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := svc.Create(User{Email: "a@example.com", Password: "y", Role: RoleTeam}); err != ErrEmailExists {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	if _, err := svc.Create(User{Email: "staff@example.com", Password: "correct-horse", Role: RoleTeam}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	u, err := svc.Authenticate("staff@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Email != "staff@example.com" || u.Role != RoleTeam {
		t.Errorf("unexpected user %+v", u)
	}

	if _, err := svc.Authenticate("staff@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "correct-horse"); err != ErrInvalidCredentials {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateKeepsPasswordWhenBlank(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	created, err := svc.Create(User{Email: "staff@example.com", Password: "original", Role: RoleTeam})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Update(created.ID, User{Email: "staff@example.com", Role: RoleAdmin}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	u, err := svc.Authenticate("staff@example.com", "original")
	if err != nil {
		t.Fatalf("old password should still work: %v", err)
	}
	if u.Role != RoleAdmin {
		t.Errorf("expected promoted role, got %q", u.Role)
	}
}
