package checkout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zsherman2510/shop-themes-backend/internal/cart"
	"github.com/zsherman2510/shop-themes-backend/internal/customer"
	"github.com/zsherman2510/shop-themes-backend/internal/order"
)

type Handler struct {
	service *Service
	store   cart.Store
}

func NewHandler(service *Service, store cart.Store) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/api/v1/checkout", h.startCheckout)
	app.Post("/api/v1/checkout/complete", h.completeCheckout)
}

type startRequest struct {
	Email string `json:"email"`
}

func (h *Handler) startCheckout(c *fiber.Ctx) error {
	payload := new(startRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	session := cart.SessionFromCtx(c)
	if session == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	}
	ct, err := h.store.Load(session)
	if err != nil {
		return storeUnavailable(c)
	}

	res, err := h.service.Start(ct, payload.Email)
	if err != nil {
		switch err {
		case order.ErrEmptyCart, order.ErrEmailRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

type completeRequest struct {
	OrderID string `json:"orderId"`
}

func (h *Handler) completeCheckout(c *fiber.Ctx) error {
	payload := new(completeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "orderId is required"})
	}

	ord, cleared, err := h.service.Complete(payload.OrderID)
	if err != nil {
		switch err {
		case order.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case customer.ErrEmailRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}

	// empty the session cart exactly once, on the call that flipped the
	// order to PAID
	if cleared {
		if session := cart.SessionFromCtx(c); session != "" {
			if err := h.store.Delete(session); err != nil {
				return storeUnavailable(c)
			}
		}
	}
	return c.JSON(ord)
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
}
