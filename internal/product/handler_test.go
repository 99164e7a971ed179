package product

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

func ptrString(s string) *string { return &s }

func newTestApp(seed []Product) *fiber.App {
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	admin := app.Group("/api/v1/admin")
	h.RegisterAdminRoutes(admin)
	return app
}

func listProducts(t *testing.T, app *fiber.App, path string) (int, listing.Result[Product]) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	var out listing.Result[Product]
	if res.StatusCode == fiber.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return res.StatusCode, out
}

func TestAdminListSearchAndFilterCombine(t *testing.T) {
	seed := []Product{
		{Name: "Blue Shirt", SKU: "SH-1", CategoryID: ptrString("cat-a"), CreatedAt: "2026-01-03T00:00:00Z"},
		{Name: "Red Shirt", SKU: "SH-2", CategoryID: ptrString("cat-b"), CreatedAt: "2026-01-02T00:00:00Z"},
		{Name: "Mug", SKU: "MG-1", CategoryID: ptrString("cat-a"), CreatedAt: "2026-01-01T00:00:00Z"},
	}
	app := newTestApp(seed)

	status, res := listProducts(t, app, "/api/v1/admin/products?search=shirt&categoryId=cat-a")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if res.Total != 1 || len(res.Items) != 1 {
		t.Fatalf("expected exactly one match, got total %d items %d", res.Total, len(res.Items))
	}
	if res.Items[0].Name != "Blue Shirt" {
		t.Errorf("unexpected match %q", res.Items[0].Name)
	}

	// search alone is OR'd across text fields, so the sku matches too
	status, res = listProducts(t, app, "/api/v1/admin/products?search=sh-2")
	if status != fiber.StatusOK || res.Total != 1 || res.Items[0].Name != "Red Shirt" {
		t.Errorf("sku search failed: status %d total %d", status, res.Total)
	}
}

func TestAdminListPagination(t *testing.T) {
	seed := make([]Product, 0, 25)
	for i := 0; i < 25; i++ {
		seed = append(seed, Product{
			Name:      fmt.Sprintf("Product %02d", i),
			CreatedAt: fmt.Sprintf("2026-01-01T00:00:%02dZ", i),
		})
	}
	app := newTestApp(seed)

	status, res := listProducts(t, app, "/api/v1/admin/products")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(res.Items) != 10 || res.Total != 25 || res.Page != 1 || res.PageCount != 3 {
		t.Errorf("unexpected first page: items %d total %d page %d pageCount %d",
			len(res.Items), res.Total, res.Page, res.PageCount)
	}
	// newest first
	if res.Items[0].Name != "Product 24" {
		t.Errorf("expected newest product first, got %q", res.Items[0].Name)
	}

	_, res = listProducts(t, app, "/api/v1/admin/products?page=3")
	if len(res.Items) != 5 {
		t.Errorf("expected 5 items on the last page, got %d", len(res.Items))
	}

	// past the end is legal and empty
	_, res = listProducts(t, app, "/api/v1/admin/products?page=9")
	if len(res.Items) != 0 || res.Total != 25 {
		t.Errorf("expected empty page with full total, got items %d total %d", len(res.Items), res.Total)
	}
}

func TestAdminListRejectsBadParameters(t *testing.T) {
	app := newTestApp(nil)

	for _, path := range []string{
		"/api/v1/admin/products?color=red",
		"/api/v1/admin/products?limit=0",
		"/api/v1/admin/products?limit=-5",
		"/api/v1/admin/products?page=0",
		"/api/v1/admin/products?page=abc",
	} {
		status, _ := listProducts(t, app, path)
		if status != fiber.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, status)
		}
	}
}

func TestStorefrontListShowsOnlyActive(t *testing.T) {
	seed := []Product{
		{Name: "Visible", Status: StatusActive, CreatedAt: "2026-01-02T00:00:00Z"},
		{Name: "Hidden", Status: StatusArchived, CreatedAt: "2026-01-01T00:00:00Z"},
	}
	app := newTestApp(seed)

	status, res := listProducts(t, app, "/api/v1/products")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if res.Total != 1 || res.Items[0].Name != "Visible" {
		t.Errorf("expected only the active product, got total %d", res.Total)
	}

	// the storefront cannot opt back in via the status filter
	status, _ = listProducts(t, app, "/api/v1/products?status=ARCHIVED")
	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400 for status filter on storefront, got %d", status)
	}
}

func TestCreateProductValidation(t *testing.T) {
	app := newTestApp(nil)

	post := func(body string) int {
		req := httptest.NewRequest("POST", "/api/v1/admin/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("create request failed: %v", err)
		}
		return res.StatusCode
	}

	if status := post(`{"price": 10}`); status != fiber.StatusBadRequest {
		t.Errorf("missing name: expected 400, got %d", status)
	}
	if status := post(`{"name": "Mug", "price": -1}`); status != fiber.StatusBadRequest {
		t.Errorf("negative price: expected 400, got %d", status)
	}
	if status := post(`{"name": "Mug", "price": 12.5}`); status != fiber.StatusCreated {
		t.Errorf("valid product: expected 201, got %d", status)
	}

	status, res := listProducts(t, app, "/api/v1/products")
	if status != fiber.StatusOK || res.Total != 1 {
		t.Fatalf("expected the created product on the storefront, got status %d total %d", status, res.Total)
	}
	if res.Items[0].Status != StatusActive {
		t.Errorf("expected status to default to ACTIVE, got %q", res.Items[0].Status)
	}
}
