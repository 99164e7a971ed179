package theme

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(seed []Theme) (*fiber.App, *Service) {
	svc := NewService(NewInMemoryRepository(seed))
	h := NewHandler(svc)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	admin := app.Group("/api/v1/admin")
	h.RegisterAdminRoutes(admin)
	return app, svc
}

func TestActiveThemeEndpoint(t *testing.T) {
	app, _ := newTestApp([]Theme{
		{ID: "t1", Name: "Summer", Settings: json.RawMessage(`{"primary":"#fff"}`), Active: true},
		{ID: "t2", Name: "Winter", Settings: json.RawMessage(`{}`)},
	})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/theme", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var got Theme
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "t1" {
		t.Errorf("expected the active theme, got %q", got.ID)
	}
}

func TestActiveThemeMissing(t *testing.T) {
	app, _ := newTestApp([]Theme{{ID: "t1", Name: "Summer"}})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/theme", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", res.StatusCode)
	}
}

func TestActivateKeepsExactlyOneActive(t *testing.T) {
	app, svc := newTestApp([]Theme{
		{ID: "t1", Name: "Summer", Active: true},
		{ID: "t2", Name: "Winter"},
	})

	res, err := app.Test(httptest.NewRequest("POST", "/api/v1/admin/themes/t2/activate", nil))
	if err != nil {
		t.Fatalf("activate request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}

	themes, err := svc.List()
	if err != nil {
		t.Fatalf("list themes: %v", err)
	}
	active := 0
	for _, th := range themes {
		if th.Active {
			active++
			if th.ID != "t2" {
				t.Errorf("wrong theme active: %q", th.ID)
			}
		}
	}
	if active != 1 {
		t.Errorf("expected exactly one active theme, got %d", active)
	}

	res, _ = app.Test(httptest.NewRequest("POST", "/api/v1/admin/themes/missing/activate", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Errorf("missing theme: expected 404, got %d", res.StatusCode)
	}
}

func TestCreateThemeDefaultsSettings(t *testing.T) {
	app, svc := newTestApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/admin/themes", strings.NewReader(`{"name": "Base"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Theme
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(created.Settings) != "{}" {
		t.Errorf("expected empty settings document, got %s", created.Settings)
	}

	themes, _ := svc.List()
	if len(themes) != 1 {
		t.Errorf("expected one stored theme, got %d", len(themes))
	}
}
