package handlers

import (
	"log"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/amader/internal/catalog"
	"github.com/example/amader/internal/models"
	"github.com/example/amader/internal/services"
)

// CheckoutHandler turns a submitted guest cart into a persisted order.
type CheckoutHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(db *gorm.DB, telegram *services.TelegramService) *CheckoutHandler {
	return &CheckoutHandler{db: db, telegram: telegram}
}

// shippingCosts maps the shipping-tier token to its flat cost. Unknown
// tokens cost nothing.
var shippingCosts = map[string]float64{
	"inside":  60,
	"outside": 120,
}

func shippingCostFor(tier string) float64 {
	return shippingCosts[tier]
}

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func isUUID(value string) bool {
	return uuidPattern.MatchString(strings.ToLower(value))
}

type checkoutItemRequest struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price"`
	Quantity  int      `json:"quantity"`
}

type checkoutRequest struct {
	Name     string                `json:"name"`
	Phone    string                `json:"phone"`
	Address  string                `json:"address"`
	Note     string                `json:"note"`
	Shipping string                `json:"shipping"`
	Payment  string                `json:"payment"`
	Items    []checkoutItemRequest `json:"items"`
}

func (r checkoutItemRequest) unitPrice() float64 {
	if r.SalePrice != nil {
		return *r.SalePrice
	}
	return r.Price
}

// lookupSlug is the value used to resolve an item that does not already
// carry an opaque product identifier.
func (r checkoutItemRequest) lookupSlug() string {
	if r.Slug != "" {
		return r.Slug
	}
	return r.ID
}

func computeTotals(items []checkoutItemRequest) (subtotal float64, totalQty int) {
	for _, item := range items {
		subtotal += item.unitPrice() * float64(item.Quantity)
		totalQty += item.Quantity
	}
	return subtotal, totalQty
}

// Checkout validates the submitted order, resolves product identifiers,
// computes totals, and persists the order header followed by its items.
// The two writes are deliberately sequential without compensation: an
// item-phase failure leaves an order with zero items.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)
	note := strings.TrimSpace(req.Note)

	shipping := req.Shipping
	if shipping == "" {
		shipping = "inside"
	}
	payment := req.Payment
	if payment == "" {
		payment = "cod"
	}

	if name == "" || phone == "" || address == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required customer details.")
	}

	if len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Cart is empty.")
	}

	slugToID, err := h.resolveSlugs(req.Items)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	subtotal, totalQty := computeTotals(req.Items)
	shippingCost := shippingCostFor(shipping)
	total := subtotal + shippingCost

	order := models.Order{
		Status:        models.OrderStatusPending,
		TotalQty:      totalQty,
		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		Total:         total,
		GuestName:     name,
		GuestPhone:    phone,
		ShippingLine1: address,
		PaymentMethod: payment,
		Note:          note,
	}

	if err := h.db.Create(&order).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		unitPrice := item.unitPrice()
		orderItem := models.OrderItem{
			OrderID:     order.ID,
			ProductName: item.Name,
			UnitPrice:   unitPrice,
			Quantity:    item.Quantity,
			TotalPrice:  unitPrice * float64(item.Quantity),
		}

		// Resolution failure is accepted: the item keeps a null product id.
		if isUUID(item.ID) {
			if id, err := uuid.Parse(item.ID); err == nil {
				orderItem.ProductID = &id
			}
		} else if id, ok := slugToID[catalog.NormalizeSlug(item.lookupSlug())]; ok {
			orderItem.ProductID = &id
		}

		items = append(items, orderItem)
	}

	if err := h.db.Create(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	go h.notifyOrder(order, req)

	return c.JSON(fiber.Map{"order_id": order.ID})
}

// resolveSlugs batch-resolves slug identifiers to product IDs for every
// item that does not already carry one.
func (h *CheckoutHandler) resolveSlugs(items []checkoutItemRequest) (map[string]uuid.UUID, error) {
	seen := make(map[string]struct{})
	var slugs []string
	for _, item := range items {
		if isUUID(item.ID) {
			continue
		}
		slug := catalog.NormalizeSlug(item.lookupSlug())
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}

	resolved := make(map[string]uuid.UUID, len(slugs))
	if len(slugs) == 0 {
		return resolved, nil
	}

	var rows []models.Product
	if err := h.db.Select("id, slug").Where("slug IN ?", slugs).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Slug != "" {
			resolved[row.Slug] = row.ID
		}
	}
	return resolved, nil
}

func (h *CheckoutHandler) notifyOrder(order models.Order, req checkoutRequest) {
	if h.telegram == nil {
		return
	}

	items := make([]services.OrderItemNotification, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemNotification{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.unitPrice(),
		})
	}

	notification := services.OrderNotification{
		OrderID:      order.ID.String(),
		Items:        items,
		Subtotal:     order.Subtotal,
		ShippingCost: order.ShippingCost,
		Total:        order.Total,
		GuestName:    order.GuestName,
		GuestPhone:   order.GuestPhone,
		Address:      order.ShippingLine1,
		Payment:      order.PaymentMethod,
	}

	if err := h.telegram.NotifyNewOrder(notification); err != nil {
		log.Printf("[Checkout] Telegram notification failed: %v", err)
	}
}
