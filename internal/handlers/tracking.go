package handlers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/amader/internal/config"
	"github.com/example/amader/internal/middleware"
	"github.com/example/amader/internal/models"
	"github.com/example/amader/internal/tracking"
)

// TrackingHandler accepts storefront analytics events and manages the
// tag-manager container configuration.
type TrackingHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	registry *tracking.SessionRegistry
}

// NewTrackingHandler constructs TrackingHandler.
func NewTrackingHandler(db *gorm.DB, cfg *config.Config, registry *tracking.SessionRegistry) *TrackingHandler {
	return &TrackingHandler{db: db, cfg: cfg, registry: registry}
}

var gtmPattern = regexp.MustCompile(`^GTM-[A-Z0-9]+$`)

// sanitizeGTMID normalizes and validates a tag-manager container id,
// returning an empty string when the value is unusable.
func sanitizeGTMID(value string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" || !gtmPattern.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

type trackEventRequest struct {
	Name         string               `json:"name"`
	Items        []tracking.ItemInput `json:"items"`
	Query        string               `json:"query"`
	ResultCount  int                  `json:"result_count"`
	ListName     string               `json:"list_name"`
	Quantity     int                  `json:"quantity"`
	OrderID      string               `json:"order_id"`
	ShippingCost float64              `json:"shipping_cost"`
	ShippingTier string               `json:"shipping_tier"`
	PaymentType  string               `json:"payment_type"`
}

// TrackEvent handles POST /api/events, dispatching to the session's
// tracker by event name.
func (h *TrackingHandler) TrackEvent(c *fiber.Ctx) error {
	var req trackEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	tracker := h.registry.Tracker(middleware.GetSessionID(c))

	firstItem := tracking.ItemInput{}
	if len(req.Items) > 0 {
		firstItem = req.Items[0]
	}

	switch req.Name {
	case "search":
		tracker.TrackSearch(req.Query, req.ResultCount)
	case "select_item":
		tracker.TrackSelectItem(firstItem, req.ListName)
	case "view_item":
		tracker.TrackViewItem(firstItem)
	case "add_to_cart":
		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}
		tracker.TrackAddToCart(firstItem, quantity)
	case "begin_checkout":
		tracker.TrackBeginCheckout(req.Items, req.ShippingCost)
	case "add_shipping_info":
		tracker.TrackAddShippingInfo(req.Items, req.ShippingTier)
	case "add_payment_info":
		tracker.TrackAddPaymentInfo(req.Items, req.PaymentType)
	case "purchase":
		tracker.TrackPurchase(req.OrderID, req.Items, req.ShippingCost)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown event name")
	}

	return c.JSON(fiber.Map{"success": true})
}

// EndSession drops the session's tracker and its dedupe state.
func (h *TrackingHandler) EndSession(c *fiber.Ctx) error {
	h.registry.EndSession(middleware.GetSessionID(c))
	return c.JSON(fiber.Map{"success": true})
}

// GetContainerID returns the active tag-manager container id: the stored
// setting when present and valid, else the environment fallback.
func (h *TrackingHandler) GetContainerID(c *fiber.Ctx) error {
	containerID := sanitizeGTMID(h.cfg.GTMContainerID)

	var setting models.TrackingSetting
	err := h.db.First(&setting, "key = ?", models.TrackingSettingGTMKey).Error
	if err == nil {
		if stored := sanitizeGTMID(setting.Value); stored != "" {
			containerID = stored
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"container_id": containerID}})
}

type updateContainerRequest struct {
	GTMID string `json:"gtm_id"`
}

// UpdateContainerID upserts the tag-manager container id.
func (h *TrackingHandler) UpdateContainerID(c *fiber.Ctx) error {
	var req updateContainerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	containerID := sanitizeGTMID(req.GTMID)
	if containerID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid container id")
	}

	setting := models.TrackingSetting{
		Key:   models.TrackingSettingGTMKey,
		Value: containerID,
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"container_id": containerID}})
}
