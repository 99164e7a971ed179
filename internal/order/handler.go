package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/orders", h.listOrders)
	r.Get("/orders/:id", h.getOrder)
	r.Put("/orders/:id/status", h.updateStatus)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	q, err := listing.FromCtx(c, FilterKeys...)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	res, err := h.service.List(q)
	if err != nil {
		if listing.IsInvalid(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return storeUnavailable(c)
	}
	return c.JSON(res)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return storeUnavailable(c)
	}
	return c.JSON(ord)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.UpdateStatus(c.Params("id"), payload.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}
	return c.JSON(ord)
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
}
