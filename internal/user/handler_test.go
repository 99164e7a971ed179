package user

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

const testSecret = "test-secret"

// newAuthApp builds the app the way main does: public login plus an admin
// group behind the jwt middleware and the staff gate.
func newAuthApp(seed []User) (*fiber.App, *Service) {
	svc := NewService(NewInMemoryRepository(nil))
	for _, u := range seed {
		if _, err := svc.Create(u); err != nil {
			panic(err)
		}
	}
	h := NewHandler(svc, testSecret)

	app := fiber.New()
	h.RegisterPublicRoutes(app)
	admin := app.Group("/api/v1/admin",
		jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}),
		RequireStaff(),
	)
	h.RegisterAdminRoutes(admin)
	return app, svc
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	body := `{"email": "` + email + `", "password": "` + password + `"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("login failed with status %d", res.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out.Token == "" {
		t.Fatal("login returned no token")
	}
	if out.User.Password != "" {
		t.Fatal("login response leaks the password hash")
	}
	return out.Token
}

func get(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return res.StatusCode
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newAuthApp([]User{{Email: "admin@example.com", Password: "pw", Role: RoleAdmin}})

	body := `{"email": "admin@example.com", "password": "wrong"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", res.StatusCode)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, _ := newAuthApp([]User{{Email: "admin@example.com", Password: "pw", Role: RoleAdmin}})

	if status := get(t, app, "/api/v1/admin/users", ""); status != fiber.StatusUnauthorized {
		t.Errorf("no token: expected 401, got %d", status)
	}
	token := login(t, app, "admin@example.com", "pw")
	if status := get(t, app, "/api/v1/admin/users", token); status != fiber.StatusOK {
		t.Errorf("admin token: expected 200, got %d", status)
	}
}

func TestTeamCanReadUsersButNotManageThem(t *testing.T) {
	app, _ := newAuthApp([]User{
		{Email: "admin@example.com", Password: "pw", Role: RoleAdmin},
		{Email: "team@example.com", Password: "pw", Role: RoleTeam},
	})
	token := login(t, app, "team@example.com", "pw")

	if status := get(t, app, "/api/v1/admin/users", token); status != fiber.StatusOK {
		t.Errorf("team list users: expected 200, got %d", status)
	}

	body := `{"email": "new@example.com", "password": "pw", "role": "TEAM"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Errorf("team create user: expected 403, got %d", res.StatusCode)
	}
}

func TestAdminCreatesUser(t *testing.T) {
	app, _ := newAuthApp([]User{{Email: "admin@example.com", Password: "pw", Role: RoleAdmin}})
	token := login(t, app, "admin@example.com", "pw")

	body := `{"email": "new@example.com", "password": "pw", "role": "TEAM"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	// the new account can log in right away
	login(t, app, "new@example.com", "pw")
}
