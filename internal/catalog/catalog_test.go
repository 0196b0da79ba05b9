package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/amader/internal/models"
)

func TestSeedProductBySlug(t *testing.T) {
	product, ok := SeedProductBySlug("crystal-honey-1kg")
	require.True(t, ok)
	assert.Equal(t, "Crystal Honey", product.Name)

	// Full product URLs resolve through slug normalization.
	product, ok = SeedProductBySlug("https://ghorerbazar.com/products/Crystal-Honey-1kg?ref=nav")
	require.True(t, ok)
	assert.Equal(t, "crystal-honey-1kg", product.Slug)

	// The href's own trailing segment also resolves.
	product, ok = SeedProductBySlug("gawa-ghee-1-kg")
	require.True(t, ok)
	assert.Equal(t, "gawa-ghee-1kg", product.Slug)

	// Prefix matching catches truncated slugs.
	product, ok = SeedProductBySlug("sundarban-honey")
	require.True(t, ok)
	assert.Equal(t, "sundarban-honey-1kg", product.Slug)

	_, ok = SeedProductBySlug("no-such-product")
	assert.False(t, ok)
}

func TestSeedOnlyService(t *testing.T) {
	svc := NewService(nil)
	require.True(t, svc.SeedOnly())

	products := svc.ListActive()
	assert.Len(t, products, len(SeedProducts()))

	product, ok := svc.GetBySlug("deshi-mustard-oil-5ltr")
	require.True(t, ok)
	assert.Equal(t, "Deshi Mustard Oil", product.Name)

	categories := svc.ListCategories()
	require.NotEmpty(t, categories)
	assert.Equal(t, CategorySentinel, categories[0])
	assert.Contains(t, categories, "Honey")
	assert.Contains(t, categories, "Tea")
}

func TestMapRowDefaults(t *testing.T) {
	id := uuid.New()
	row := models.Product{
		BaseModel:   models.BaseModel{ID: id},
		Description: "A long tasting note about honey.",
	}

	got := MapRow(row)
	assert.Equal(t, id.String(), got.Slug)
	assert.Equal(t, "Product", got.Name)
	assert.Equal(t, "Product", got.LocalName)
	assert.Equal(t, 4.8, got.Rating)
	assert.Equal(t, CategorySentinel, got.Category)
	assert.Equal(t, PlaceholderImage, got.Image)
	assert.Equal(t, []string{PlaceholderImage}, got.Gallery)
	assert.Equal(t, row.Description, got.ShortDescription)
	assert.Equal(t, row.Description, got.Details)
	assert.Equal(t, []string{row.Description}, got.Highlights)
	assert.Equal(t, "/products/"+id.String(), got.Href)
}

func TestMapRowImagesSortedAndSlugNormalized(t *testing.T) {
	sale := 1000.0
	row := models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Slug:      "/products/Crystal-Honey-1kg/",
		Name:      "Crystal Honey",
		LocalName: "ক্রিস্টাল হানি",
		Price:     1100,
		SalePrice: &sale,
		Rating:    4.7,
		Category:  &models.Category{Name: "Honey"},
		Images: []models.ProductImage{
			{ImageURL: "second.jpg", SortOrder: 2},
			{ImageURL: "first.jpg", SortOrder: 1},
			{ImageURL: "", SortOrder: 0},
		},
	}

	got := MapRow(row)
	assert.Equal(t, "crystal-honey-1kg", got.Slug)
	assert.Equal(t, "first.jpg", got.Image)
	assert.Equal(t, []string{"first.jpg", "second.jpg"}, got.Gallery)
	assert.Equal(t, "Honey", got.Category)
	assert.Equal(t, "/products/crystal-honey-1kg", got.Href)
	require.NotNil(t, got.SalePrice)
	assert.Equal(t, 1000.0, *got.SalePrice)
}

func TestMapRowHighlightExcerptIsRuneSafe(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "মধু "
	}
	row := models.Product{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Honey",
		Description: long,
	}

	got := MapRow(row)
	require.Len(t, got.Highlights, 1)
	assert.Equal(t, string([]rune(long)[:80]), got.Highlights[0])
}
