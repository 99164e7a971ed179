package customer

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
	r.Get("/customers", h.listCustomers)
	r.Get("/customers/:id", h.getCustomer)
}

func (h *Handler) listCustomers(c *fiber.Ctx) error {
	q, err := listing.FromCtx(c, FilterKeys...)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	res, err := h.service.List(q)
	if err != nil {
		if listing.IsInvalid(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
	}
	return c.JSON(res)
}

func (h *Handler) getCustomer(c *fiber.Ctx) error {
	cust, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
	}
	return c.JSON(cust)
}
