package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/amader/internal/config"
	"github.com/example/amader/internal/models"
	"github.com/example/amader/internal/services"
	"github.com/example/amader/internal/utils"
)

// ReviewHandler manages guest review submission and admin moderation.
type ReviewHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	telegram *services.TelegramService
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(db *gorm.DB, cfg *config.Config, telegram *services.TelegramService) *ReviewHandler {
	return &ReviewHandler{db: db, cfg: cfg, telegram: telegram}
}

type submitReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	GuestName string `json:"guestName"`
}

// Submit handles POST /api/reviews. Submission fails closed when the
// hashing salt is not configured. The insert is a single statement, so a
// review is either fully created with pending status or not at all.
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	if h.cfg.ReviewHashSalt == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "Review hashing salt is not configured.")
	}

	var req submitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	body := strings.TrimSpace(req.Body)
	if req.ProductID == "" || body == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields.")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	review := models.Review{
		ProductID:    productID,
		Rating:       req.Rating,
		Title:        strings.TrimSpace(req.Title),
		Body:         body,
		ReviewerHash: utils.ReviewerFingerprint(h.cfg.ReviewHashSalt, clientIP(c), userAgent(c)),
		GuestName:    strings.TrimSpace(req.GuestName),
		Status:       models.ReviewStatusPending,
	}

	if err := h.db.Create(&review).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	go h.notifyReview(review)

	return c.JSON(fiber.Map{"id": review.ID})
}

// clientIP takes the first X-Forwarded-For hop, defaulting when absent.
func clientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	ip := strings.TrimSpace(strings.Split(forwarded, ",")[0])
	if ip == "" {
		return "0.0.0.0"
	}
	return ip
}

func userAgent(c *fiber.Ctx) string {
	agent := c.Get("User-Agent")
	if agent == "" {
		return "unknown"
	}
	return agent
}

func (h *ReviewHandler) notifyReview(review models.Review) {
	if h.telegram == nil {
		return
	}

	productName := review.ProductID.String()
	var product models.Product
	if err := h.db.First(&product, "id = ?", review.ProductID).Error; err == nil {
		productName = product.Name
	}

	if err := h.telegram.NotifyNewReview(productName, review.Rating); err != nil {
		log.Printf("[Review] Telegram notification failed: %v", err)
	}
}

// ListReviews returns reviews for moderation, filtered by status.
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Review{})

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var reviews []models.Review
	if err := query.Preload("Product").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&reviews).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reviews,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type moderateReviewRequest struct {
	Status string `json:"status"`
}

// ModerateReview approves or rejects a pending review.
func (h *ReviewHandler) ModerateReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req moderateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Status != models.ReviewStatusApproved && req.Status != models.ReviewStatusRejected {
		return fiber.NewError(fiber.StatusBadRequest, "status must be approved or rejected")
	}

	var review models.Review
	if err := h.db.First(&review, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "review not found")
		}
		return err
	}

	if err := h.db.Model(&review).Update("status", req.Status).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": review})
}

// DeleteReview removes a review.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Review{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
