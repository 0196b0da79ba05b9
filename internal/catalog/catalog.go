package catalog

import (
	"errors"
	"log"
	"regexp"
	"sort"

	"gorm.io/gorm"

	"github.com/example/amader/internal/models"
)

// PlaceholderImage is used when a product carries no image rows.
const PlaceholderImage = "/icons/icon.svg"

// Product is the canonical storefront shape every product row is
// normalized into, whether it came from the database or the seed list.
type Product struct {
	ID               string   `json:"id,omitempty"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	LocalName        string   `json:"local_name"`
	Size             string   `json:"size"`
	Price            float64  `json:"price"`
	SalePrice        *float64 `json:"sale_price,omitempty"`
	Gallery          []string `json:"gallery"`
	Rating           float64  `json:"rating"`
	Reviews          int      `json:"reviews"`
	Category         string   `json:"category"`
	Origin           string   `json:"origin"`
	ShortDescription string   `json:"short_description"`
	Details          string   `json:"details"`
	Highlights       []string `json:"highlights"`
	Image            string   `json:"image"`
	Href             string   `json:"href"`
}

// Service resolves products either from the database or, when constructed
// without one, from the static seed catalog. The switch happens once at
// construction; a per-query miss never falls through to the seed list.
type Service struct {
	db *gorm.DB
}

// NewService builds a Service backed by db. Passing nil puts the service
// into seed-only mode.
func NewService(db *gorm.DB) *Service {
	if db == nil {
		log.Println("[Catalog] no database configured, serving seed catalog")
	}
	return &Service{db: db}
}

// SeedOnly reports whether the service answers from the seed catalog.
func (s *Service) SeedOnly() bool {
	return s.db == nil
}

// ListActive returns active products, newest first. Backend failures
// degrade to an empty list rather than an error.
func (s *Service) ListActive() []Product {
	if s.SeedOnly() {
		return SeedProducts()
	}

	var rows []models.Product
	if err := s.db.Preload("Category").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	}).Where("status = ?", models.ProductStatusActive).
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		log.Printf("[Catalog] list products failed: %v", err)
		return []Product{}
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, MapRow(row))
	}
	return products
}

var uuidLikePattern = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)

// GetBySlug resolves a product from a raw slug, full URL, or id. Input is
// normalized first; an exact slug match wins, then a primary-key retry when
// the value looks like an opaque identifier.
func (s *Service) GetBySlug(raw string) (Product, bool) {
	normalized := NormalizeSlug(raw)
	if s.SeedOnly() {
		return SeedProductBySlug(normalized)
	}

	var row models.Product
	err := s.preloaded().First(&row, "slug = ?", normalized).Error
	if err == nil {
		return MapRow(row), true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[Catalog] product lookup failed: %v", err)
		return Product{}, false
	}

	if !uuidLikePattern.MatchString(normalized) {
		return Product{}, false
	}

	if err := s.preloaded().First(&row, "id = ?", normalized).Error; err != nil {
		return Product{}, false
	}
	return MapRow(row), true
}

// ListCategories returns category names for filtering, always prefixed
// with the "All Product" sentinel. The dedicated category table wins when
// populated; otherwise the list is derived from the active products.
func (s *Service) ListCategories() []string {
	if s.SeedOnly() {
		return BuildCategories(SeedProducts())
	}

	var names []string
	if err := s.db.Model(&models.Category{}).
		Order("name asc").
		Pluck("name", &names).Error; err != nil || len(names) == 0 {
		return BuildCategories(s.ListActive())
	}

	return append([]string{CategorySentinel}, names...)
}

func (s *Service) preloaded() *gorm.DB {
	return s.db.Preload("Category").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc")
	})
}

// MapRow normalizes a database row into the canonical product shape,
// applying the defaulting rules for every field in one place.
func MapRow(row models.Product) Product {
	images := make([]string, 0, len(row.Images))
	sorted := make([]models.ProductImage, len(row.Images))
	copy(sorted, row.Images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	for _, image := range sorted {
		if image.ImageURL != "" {
			images = append(images, image.ImageURL)
		}
	}

	image := PlaceholderImage
	if len(images) > 0 {
		image = images[0]
	}

	slug := NormalizeSlug(row.Slug)
	if slug == "" {
		slug = row.ID.String()
	}

	name := row.Name
	if name == "" {
		name = "Product"
	}

	localName := row.LocalName
	if localName == "" {
		localName = name
	}

	rating := row.Rating
	if rating == 0 {
		rating = 4.8
	}

	category := CategorySentinel
	if row.Category != nil && row.Category.Name != "" {
		category = row.Category.Name
	}

	shortDescription := row.ShortDescription
	if shortDescription == "" {
		shortDescription = row.Description
	}

	details := row.Details
	if details == "" {
		details = row.Description
	}

	highlights := []string(row.Highlights)
	if len(highlights) == 0 && row.Description != "" {
		excerpt := []rune(row.Description)
		if len(excerpt) > 80 {
			excerpt = excerpt[:80]
		}
		highlights = []string{string(excerpt)}
	}

	gallery := images
	if len(gallery) == 0 {
		gallery = []string{image}
	}

	return Product{
		ID:               row.ID.String(),
		Slug:             slug,
		Name:             name,
		LocalName:        localName,
		Size:             row.Size,
		Price:            row.Price,
		SalePrice:        row.SalePrice,
		Gallery:          gallery,
		Rating:           rating,
		Reviews:          row.ReviewCount,
		Category:         category,
		Origin:           row.Origin,
		ShortDescription: shortDescription,
		Details:          details,
		Highlights:       highlights,
		Image:            image,
		Href:             "/products/" + slug,
	}
}
