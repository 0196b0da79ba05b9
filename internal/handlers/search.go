package handlers

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/amader/internal/catalog"
	"github.com/example/amader/internal/models"
	"github.com/example/amader/internal/utils"
)

// SearchHandler serves the storefront's typeahead product search.
type SearchHandler struct {
	db *gorm.DB
}

// NewSearchHandler constructs SearchHandler.
func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{db: db}
}

const defaultSearchLimit = 6

type searchResult struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// scoreMatch rates a candidate against the query: +3 for a name hit, +2
// for a slug hit, +1 for a description hit. Substring tests are
// case-insensitive and cumulative.
func scoreMatch(query, name, slug, description string) int {
	normalized := strings.ToLower(query)
	score := 0
	if strings.Contains(strings.ToLower(name), normalized) {
		score += 3
	}
	if strings.Contains(strings.ToLower(slug), normalized) {
		score += 2
	}
	if strings.Contains(strings.ToLower(description), normalized) {
		score += 1
	}
	return score
}

// rankResults scores the candidates and orders them by descending score.
// The sort is stable, so ties keep the incoming fetch order.
func rankResults(query string, rows []models.Product, limit int) []searchResult {
	type scored struct {
		result searchResult
		score  int
	}

	candidates := make([]scored, 0, len(rows))
	for _, row := range rows {
		image := catalog.PlaceholderImage
		best := -1
		for _, img := range row.Images {
			if img.ImageURL == "" {
				continue
			}
			if best == -1 || img.SortOrder < best {
				best = img.SortOrder
				image = img.ImageURL
			}
		}

		candidates = append(candidates, scored{
			score: scoreMatch(query, row.Name, row.Slug, row.Description),
			result: searchResult{
				ID:    row.ID.String(),
				Name:  row.Name,
				Slug:  row.Slug,
				Image: image,
				Price: row.Price,
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]searchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, candidate.result)
	}
	return results
}

// Search handles GET /api/search. An empty query yields an empty result
// set, never an error.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	limit := utils.ParseInt(c.Query("limit", ""), defaultSearchLimit)
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if query == "" {
		return c.JSON(fiber.Map{"results": []searchResult{}})
	}

	fetchLimit := limit * 3
	if fetchLimit > 30 {
		fetchLimit = 30
	}

	pattern := "%" + query + "%"
	var rows []models.Product
	if err := h.db.Preload("Images").
		Where("status = ?", models.ProductStatusActive).
		Where("name ILIKE ? OR slug ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Order("created_at desc").
		Limit(fetchLimit).
		Find(&rows).Error; err != nil {
		return c.JSON(fiber.Map{"results": []searchResult{}})
	}

	return c.JSON(fiber.Map{"results": rankResults(query, rows, limit)})
}
