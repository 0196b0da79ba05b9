package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/amader/internal/catalog"
)

// CatalogHandler serves the public storefront catalog: normalized product
// views and the category filter list.
type CatalogHandler struct {
	svc *catalog.Service
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListProducts returns the active catalog, optionally filtered by the
// category URL parameter ("all" or empty means no filter).
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products := h.svc.ListActive()

	if param := c.Query("category"); param != "" {
		filtered := make([]catalog.Product, 0, len(products))
		for _, product := range products {
			if catalog.MatchesCategory(param, product) {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	return c.JSON(fiber.Map{"success": true, "data": products})
}

// GetProduct resolves a product by slug, URL, or id.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, ok := h.svc.GetBySlug(c.Params("slug"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListCategories returns the category names, sentinel first.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.svc.ListCategories()})
}
