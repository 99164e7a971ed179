package theme

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/theme", h.getActiveTheme)
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/themes", h.listThemes)
	r.Post("/themes", h.createTheme)
	r.Put("/themes/:id", h.updateTheme)
	r.Post("/themes/:id/activate", h.activateTheme)
}

func (h *Handler) getActiveTheme(c *fiber.Ctx) error {
	t, err := h.service.GetActive()
	if err != nil {
		if err == ErrNoActive {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active theme"})
		}
		return storeUnavailable(c)
	}
	return c.JSON(t)
}

func (h *Handler) listThemes(c *fiber.Ctx) error {
	themes, err := h.service.List()
	if err != nil {
		return storeUnavailable(c)
	}
	return c.JSON(themes)
}

type themeRequest struct {
	Name     string          `json:"name"`
	Settings json.RawMessage `json:"settings"`
}

func (h *Handler) createTheme(c *fiber.Ctx) error {
	payload := new(themeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(Theme{Name: payload.Name, Settings: payload.Settings})
	if err != nil {
		if err == ErrNameRequired {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return storeUnavailable(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateTheme(c *fiber.Ctx) error {
	payload := new(themeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), Theme{Name: payload.Name, Settings: payload.Settings})
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "theme not found"})
		case ErrNameRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}
	return c.JSON(updated)
}

func (h *Handler) activateTheme(c *fiber.Ctx) error {
	if err := h.service.Activate(c.Params("id")); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "theme not found"})
		}
		return storeUnavailable(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
}
