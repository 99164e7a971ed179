package order

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/zsherman2510/shop-themes-backend/internal/cart"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

func newTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	svc := NewService(NewInMemoryRepository(nil))
	h := NewHandler(svc)
	app := fiber.New()
	admin := app.Group("/api/v1/admin")
	h.RegisterAdminRoutes(admin)
	return app, svc
}

func placeOrder(t *testing.T, svc *Service, email string) Order {
	t.Helper()
	var ct cart.Cart
	ct.Add(cart.LineItem{ProductID: "p1", Name: "Mug", UnitPrice: 10, Quantity: 2})
	ord, err := svc.CreateFromCart(ct, email, 5)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return ord
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	app, svc := newTestApp(t)
	pending := placeOrder(t, svc, "a@example.com")
	paid := placeOrder(t, svc, "b@example.com")
	if _, _, err := svc.MarkPaid(paid.ID, "cust-1"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders?status=PENDING", nil))
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var out listing.Result[Order]
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Total != 1 || out.Items[0].ID != pending.ID {
		t.Errorf("expected only the pending order, got %+v", out)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders?email=a@example.com", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("unknown filter: expected 400, got %d", res.StatusCode)
	}
}

func TestSearchOrdersByNumberAndEmail(t *testing.T) {
	app, svc := newTestApp(t)
	ord := placeOrder(t, svc, "shopper@example.com")
	placeOrder(t, svc, "other@example.com")

	for _, term := range []string{ord.Number, "shopper"} {
		res, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders?search="+term, nil))
		if err != nil {
			t.Fatalf("search request failed: %v", err)
		}
		var out listing.Result[Order]
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if out.Total != 1 || out.Items[0].ID != ord.ID {
			t.Errorf("search %q: expected the shopper's order, got total %d", term, out.Total)
		}
	}
}

func TestOrderDetailIncludesSnapshot(t *testing.T) {
	app, svc := newTestApp(t)
	ord := placeOrder(t, svc, "shopper@example.com")

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders/"+ord.ID, nil))
	if err != nil {
		t.Fatalf("detail request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var got Order
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Mug" {
		t.Errorf("expected the line item snapshot, got %+v", got.Items)
	}
	if got.Subtotal != 20 || got.ShippingPrice != 5 || got.TotalPrice != 25 {
		t.Errorf("unexpected totals: %+v", got)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders/missing", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Errorf("missing order: expected 404, got %d", res.StatusCode)
	}
}

func TestUpdateStatus(t *testing.T) {
	app, svc := newTestApp(t)
	ord := placeOrder(t, svc, "shopper@example.com")

	put := func(id, body string) (int, Order) {
		req := httptest.NewRequest("PUT", "/api/v1/admin/orders/"+id+"/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("status request failed: %v", err)
		}
		var got Order
		if res.StatusCode == fiber.StatusOK {
			if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
		}
		return res.StatusCode, got
	}

	// status is normalized to upper case
	status, got := put(ord.ID, `{"status": "fulfilled"}`)
	if status != fiber.StatusOK || got.Status != StatusFulfilled {
		t.Errorf("expected FULFILLED, got status %d order %+v", status, got)
	}

	if status, _ := put(ord.ID, `{"status": "SHREDDED"}`); status != fiber.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", status)
	}
	if status, _ := put("missing", `{"status": "PAID"}`); status != fiber.StatusNotFound {
		t.Errorf("missing order: expected 404, got %d", status)
	}
}
