package page

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

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/pages/:slug", h.getPublishedPage)
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/pages", h.listPages)
	r.Post("/pages", h.createPage)
	r.Get("/pages/:id", h.getPage)
	r.Put("/pages/:id", h.updatePage)
	r.Delete("/pages/:id", h.deletePage)
}

func (h *Handler) getPublishedPage(c *fiber.Ctx) error {
	p, err := h.service.GetPublishedBySlug(c.Params("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "page not found"})
		}
		return storeUnavailable(c)
	}
	return c.JSON(p)
}

func (h *Handler) listPages(c *fiber.Ctx) error {
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

func (h *Handler) getPage(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "page not found"})
		}
		return storeUnavailable(c)
	}
	return c.JSON(p)
}

type pageRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

func (h *Handler) createPage(c *fiber.Ctx) error {
	payload := new(pageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(Page{
		Slug:      payload.Slug,
		Title:     payload.Title,
		Content:   payload.Content,
		Published: payload.Published,
	})
	if err != nil {
		switch err {
		case ErrTitleRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrSlugTaken:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updatePage(c *fiber.Ctx) error {
	payload := new(pageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), Page{
		Slug:      payload.Slug,
		Title:     payload.Title,
		Content:   payload.Content,
		Published: payload.Published,
	})
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "page not found"})
		case ErrTitleRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrSlugTaken:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deletePage(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "page not found"})
		}
		return storeUnavailable(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
}
