package product

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

// Handler exposes the storefront and admin product endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/products", h.listStorefront)
	app.Get("/api/v1/products/:id", h.getProduct)
}

func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/products", h.listAdmin)
	r.Post("/products", h.createProduct)
	r.Get("/products/:id", h.getProduct)
	r.Put("/products/:id", h.updateProduct)
	r.Delete("/products/:id", h.deleteProduct)
}

// listStorefront serves the public catalog: only active products, with an
// optional category filter and text search.
func (h *Handler) listStorefront(c *fiber.Ctx) error {
	q, err := listing.FromCtx(c, "categoryId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	q.Filters["status"] = StatusActive

	res, err := h.service.List(q)
	if err != nil {
		return listError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) listAdmin(c *fiber.Ctx) error {
	q, err := listing.FromCtx(c, FilterKeys...)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	res, err := h.service.List(q)
	if err != nil {
		return listError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return storeUnavailable(c)
	}
	return c.JSON(p)
}

type productRequest struct {
	Name        string   `json:"name"`
	SKU         string   `json:"sku"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	CategoryID  *string  `json:"categoryId"`
	Status      string   `json:"status"`
}

func (req productRequest) toProduct() Product {
	return Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
	}
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(payload.toProduct())
	if err != nil {
		switch err {
		case ErrNameRequired, ErrNegativePrice:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), payload.toProduct())
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrNameRequired, ErrNegativePrice:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return storeUnavailable(c)
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return storeUnavailable(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func listError(c *fiber.Ctx, err error) error {
	if listing.IsInvalid(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return storeUnavailable(c)
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "store unavailable"})
}
