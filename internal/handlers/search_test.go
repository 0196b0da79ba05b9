package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/amader/internal/catalog"
	"github.com/example/amader/internal/models"
)

func TestScoreMatch(t *testing.T) {
	score := scoreMatch("honey", "Crystal Honey", "crystal-honey-1kg", "Raw honey from wild hives.")
	assert.Equal(t, 6, score)

	score = scoreMatch("wild", "Crystal Honey", "crystal-honey-1kg", "Raw honey from wild hives.")
	assert.Equal(t, 1, score)

	score = scoreMatch("HONEY", "crystal honey", "", "")
	assert.Equal(t, 3, score)

	score = scoreMatch("ghee", "Crystal Honey", "crystal-honey-1kg", "Raw honey.")
	assert.Equal(t, 0, score)
}

func searchRow(name, slug, description string) models.Product {
	return models.Product{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        name,
		Slug:        slug,
		Description: description,
	}
}

func TestRankResultsOrdersByScore(t *testing.T) {
	rows := []models.Product{
		searchRow("Gawa Ghee", "gawa-ghee-1kg", "Pairs well with honey."),
		searchRow("Crystal Honey", "crystal-honey-1kg", "Raw honey from wild hives."),
	}

	results := rankResults("honey", rows, 6)
	require.Len(t, results, 2)
	assert.Equal(t, "Crystal Honey", results[0].Name)
	assert.Equal(t, "Gawa Ghee", results[1].Name)
}

func TestRankResultsTiesKeepFetchOrder(t *testing.T) {
	rows := []models.Product{
		searchRow("Sundarban Honey", "sundarban-honey-1kg", ""),
		searchRow("Black Seed Honey", "black-seed-honey-1kg", ""),
	}

	results := rankResults("honey", rows, 6)
	require.Len(t, results, 2)
	assert.Equal(t, "Sundarban Honey", results[0].Name)
	assert.Equal(t, "Black Seed Honey", results[1].Name)
}

func TestRankResultsTruncatesToLimit(t *testing.T) {
	rows := []models.Product{
		searchRow("Honey A", "honey-a", ""),
		searchRow("Honey B", "honey-b", ""),
		searchRow("Honey C", "honey-c", ""),
	}

	results := rankResults("honey", rows, 2)
	assert.Len(t, results, 2)
}

func TestRankResultsPicksLowestSortOrderImage(t *testing.T) {
	row := searchRow("Crystal Honey", "crystal-honey-1kg", "")
	row.Images = []models.ProductImage{
		{ImageURL: "second.jpg", SortOrder: 2},
		{ImageURL: "first.jpg", SortOrder: 1},
	}

	results := rankResults("honey", []models.Product{row}, 6)
	require.Len(t, results, 1)
	assert.Equal(t, "first.jpg", results[0].Image)
}

func TestRankResultsFallsBackToPlaceholderImage(t *testing.T) {
	results := rankResults("honey", []models.Product{searchRow("Honey", "honey", "")}, 6)
	require.Len(t, results, 1)
	assert.Equal(t, catalog.PlaceholderImage, results[0].Image)
}
