package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/amader/internal/commerce"
	"github.com/example/amader/internal/middleware"
)

// CartHandler exposes the session-scoped cart and favorites stores over
// HTTP. Each guest session owns its own store keyed by the session cookie.
type CartHandler struct {
	storage commerce.Storage
}

// NewCartHandler constructs CartHandler over the shared session storage.
func NewCartHandler(storage commerce.Storage) *CartHandler {
	return &CartHandler{storage: storage}
}

func (h *CartHandler) cart(c *fiber.Ctx) *commerce.CartStore {
	return commerce.NewCartStore(h.storage, "cart:"+middleware.GetSessionID(c))
}

func (h *CartHandler) favorites(c *fiber.Ctx) *commerce.FavoritesStore {
	return commerce.NewFavoritesStore(h.storage, "favorites:"+middleware.GetSessionID(c))
}

type cartAddRequest struct {
	Item     commerce.Item `json:"item"`
	Quantity int           `json:"quantity"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the session's cart, most recently added first.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.cart(c).Read()})
}

// AddToCart merges an item into the cart by id.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req cartAddRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Item.ID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "item id is required")
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	store := h.cart(c)
	store.Add(req.Item, quantity)
	return c.JSON(fiber.Map{"success": true, "data": store.Read()})
}

// UpdateCartItem sets an item's quantity; zero or less removes it.
func (h *CartHandler) UpdateCartItem(c *fiber.Ctx) error {
	var req cartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	store := h.cart(c)
	store.UpdateQuantity(c.Params("id"), req.Quantity)
	return c.JSON(fiber.Map{"success": true, "data": store.Read()})
}

// RemoveCartItem deletes an item from the cart.
func (h *CartHandler) RemoveCartItem(c *fiber.Ctx) error {
	store := h.cart(c)
	store.Remove(c.Params("id"))
	return c.JSON(fiber.Map{"success": true, "data": store.Read()})
}

// ClearCart empties the session's cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	store := h.cart(c)
	store.Clear()
	return c.JSON(fiber.Map{"success": true, "data": store.Read()})
}

// GetFavorites returns the session's saved products.
func (h *CartHandler) GetFavorites(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.favorites(c).Read()})
}

// ToggleFavorite saves or unsaves a product.
func (h *CartHandler) ToggleFavorite(c *fiber.Ctx) error {
	var item commerce.Item
	if err := c.BodyParser(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if item.ID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "item id is required")
	}

	store := h.favorites(c)
	saved := store.Toggle(item)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"saved": saved, "items": store.Read()},
	})
}

// RemoveFavorite deletes a saved product.
func (h *CartHandler) RemoveFavorite(c *fiber.Ctx) error {
	store := h.favorites(c)
	store.Remove(c.Params("id"))
	return c.JSON(fiber.Map{"success": true, "data": store.Read()})
}

// ClearFavorites empties the favorites list.
func (h *CartHandler) ClearFavorites(c *fiber.Ctx) error {
	store := h.favorites(c)
	store.Clear()
	return c.JSON(fiber.Map{"success": true, "data": store.Read()})
}
