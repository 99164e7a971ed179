package cart

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/product"
)

const sessionCookie = "shop_session"

// SessionFromCtx returns the cart session id carried by the request
// cookie, or empty when the shopper has never touched the cart. Checkout
// uses it to find the cart to hand off.
func SessionFromCtx(c *fiber.Ctx) string {
	return c.Cookies(sessionCookie)
}

// ProductFinder supplies the product snapshot stored on a line item.
// Satisfied by *product.Service.
type ProductFinder interface {
	GetByID(id string) (product.Product, error)
}

// Handler exposes the session cart endpoints. Mutation handlers load the
// cart once, apply the engine operation and save it back, so persistence
// stays at the boundary instead of inside the cart logic.
type Handler struct {
	store    Store
	products ProductFinder
}

func NewHandler(store Store, products ProductFinder) *Handler {
	return &Handler{store: store, products: products}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:productId", h.updateItem)
	app.Delete("/api/v1/cart/items/:productId", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

// session returns the cart session id, issuing a cookie on first contact.
func (h *Handler) session(c *fiber.Ctx) string {
	if v := c.Cookies(sessionCookie); v != "" {
		return v
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
	return id
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	ct, err := h.store.Load(h.session(c))
	if err != nil {
		return storeUnavailable(c)
	}
	return c.JSON(NewView(ct))
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil {
		if err == product.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return storeUnavailable(c)
	}

	session := h.session(c)
	ct, err := h.store.Load(session)
	if err != nil {
		return storeUnavailable(c)
	}

	ct.Add(LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.PrimaryImage(),
		Quantity:  payload.Quantity,
	})
	if err := h.store.Save(session, ct); err != nil {
		return storeUnavailable(c)
	}
	return c.JSON(NewView(ct))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// updateItem sets a line's quantity exactly; zero or less removes it.
// Unknown product ids are a no-op, the current cart is returned either way.
func (h *Handler) updateItem(c *fiber.Ctx) error {
	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	session := h.session(c)
	ct, err := h.store.Load(session)
	if err != nil {
		return storeUnavailable(c)
	}

	ct.UpdateQuantity(c.Params("productId"), payload.Quantity)
	if err := h.store.Save(session, ct); err != nil {
		return storeUnavailable(c)
	}
	return c.JSON(NewView(ct))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	session := h.session(c)
	ct, err := h.store.Load(session)
	if err != nil {
		return storeUnavailable(c)
	}

	ct.Remove(c.Params("productId"))
	if err := h.store.Save(session, ct); err != nil {
		return storeUnavailable(c)
	}
	return c.JSON(NewView(ct))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	session := h.session(c)
	ct, err := h.store.Load(session)
	if err != nil {
		return storeUnavailable(c)
	}

	ct.Clear()
	if err := h.store.Save(session, ct); err != nil {
		return storeUnavailable(c)
	}
	return c.JSON(NewView(ct))
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
}
