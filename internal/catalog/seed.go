package catalog

import "strings"

func ptr(v float64) *float64 { return &v }

// seedProducts is the static fallback catalog served when no database is
// configured. Slugs and prices mirror the live storefront inventory.
var seedProducts = []Product{
	{
		Slug:             "crystal-honey-1kg",
		Name:             "Crystal Honey",
		LocalName:        "ক্রিস্টাল হানি",
		Size:             "1kg",
		Price:            1100,
		SalePrice:        ptr(1000),
		Rating:           4.7,
		Reviews:          28,
		Category:         "Honey",
		Origin:           "Bangladesh",
		ShortDescription: "Crystal Honey/ক্রিস্টাল হানি ক্রিস্টালাইজেশন একটি প্রাকৃতিক প্রক্রিয়া। এটি মধুর গুণমানকে কোনোভাবেই প্রভাবিত করে না।",
		Details:          "Crystal honey naturally crystallizes over time without losing its aroma or nutrition.",
		Highlights: []string{
			"Naturally crystallized with no additives",
			"Balanced sweetness and floral aroma",
			"Great for breakfast, baking, and remedies",
		},
		Image:   "https://ghorerbazar.com/cdn/shop/files/Honeyraj-Crystal-honey_jpg.jpg",
		Gallery: []string{"https://ghorerbazar.com/cdn/shop/files/Honeyraj-Crystal-honey_jpg.jpg"},
		Href:    "https://ghorerbazar.com/products/crystal-honey",
	},
	{
		Slug:             "deshi-mustard-oil-5ltr",
		Name:             "Deshi Mustard Oil",
		LocalName:        "দেশি সরিষার তেল",
		Size:             "5 L",
		Price:            1550,
		SalePrice:        ptr(1472),
		Rating:           4.6,
		Reviews:          19,
		Category:         "Oil",
		Origin:           "Bangladesh",
		ShortDescription: "সরিষার তেল স্বাস্থ্যকর রান্নার জন্য আদর্শ।",
		Details:          "Cold-pressed mustard oil with a bold aroma and deep flavor.",
		Highlights: []string{
			"Strong mustard aroma for authentic dishes",
			"Cold-pressed for richer nutrition",
			"Family-size 5L pack for everyday cooking",
		},
		Image:   "https://ghorerbazar.com/cdn/shop/files/Shsoti-Mastraid-oil5lt.jpg",
		Gallery: []string{"https://ghorerbazar.com/cdn/shop/files/Shsoti-Mastraid-oil5lt.jpg"},
		Href:    "https://ghorerbazar.com/products/local-maghi-sarisha-oil-5-ltr",
	},
	{
		Slug:             "gawa-ghee-1kg",
		Name:             "Gawa Ghee",
		LocalName:        "গাওয়া ঘি",
		Size:             "1kg",
		Price:            1800,
		SalePrice:        ptr(1710),
		Rating:           4.8,
		Reviews:          41,
		Category:         "Ghee",
		Origin:           "Bangladesh",
		ShortDescription: "খাঁটি গাওয়া ঘি দুধের একটি প্রক্রিয়াজাত খাদ্য উপাদান।",
		Details:          "Traditional ghee crafted from pure dairy, rich in aroma.",
		Highlights: []string{
			"Slow-cooked for a nutty aroma",
			"Rich, golden texture",
			"Ideal for festive dishes and sweets",
		},
		Image:   "https://ghorerbazar.com/cdn/shop/files/Shosti-Ghee-1kg.jpg",
		Gallery: []string{"https://ghorerbazar.com/cdn/shop/files/Shosti-Ghee-1kg.jpg"},
		Href:    "https://ghorerbazar.com/products/gawa-ghee-1-kg",
	},
	{
		Slug:             "sundarban-honey-1kg",
		Name:             "Sundarban Honey",
		LocalName:        "সুন্দরবনের মধু",
		Size:             "1kg",
		Price:            2500,
		SalePrice:        ptr(2200),
		Rating:           4.9,
		Reviews:          33,
		Category:         "Honey",
		Origin:           "Sundarbans, Bangladesh",
		ShortDescription: "সুন্দরবনের প্রাকৃতিক চাকের মধু।",
		Details:          "Raw honey collected from the Sundarbans mangrove forest.",
		Highlights: []string{
			"Collected from wild hives",
			"Thin texture with deep floral notes",
			"Seasonal harvest in limited batches",
		},
		Image:   "https://ghorerbazar.com/cdn/shop/files/Sundarban-Honey-1kg.jpg",
		Gallery: []string{"https://ghorerbazar.com/cdn/shop/files/Sundarban-Honey-1kg.jpg"},
		Href:    "https://ghorerbazar.com/products/sundarban-honey",
	},
	{
		Slug:             "organic-longjing-green-tea-100g",
		Name:             "Organic Longjing Green Tea",
		LocalName:        "Organic Longjing Green Tea",
		Size:             "100g",
		Price:            650,
		Rating:           4.5,
		Reviews:          11,
		Category:         "Tea",
		Origin:           "China",
		ShortDescription: "Premium Longjing green tea with a smooth, fresh aroma.",
		Details:          "Organic Longjing tea leaves brewed for a clean, soothing taste.",
		Highlights: []string{
			"Organic Longjing leaves",
			"Fresh, smooth flavor",
			"Ideal for daily tea ritual",
		},
		Image:   "https://ghorerbazar.com/cdn/shop/files/green-tea.jpg",
		Gallery: []string{"https://ghorerbazar.com/cdn/shop/files/green-tea.jpg"},
		Href:    "https://ghorerbazar.com/products/glarvest-organic-longjing-green-tea-100g",
	},
	{
		Slug:             "black-seed-honey-1kg",
		Name:             "Black Seed Honey",
		LocalName:        "Black Seed Honey",
		Size:             "1kg",
		Price:            1600,
		SalePrice:        ptr(1440),
		Rating:           4.8,
		Reviews:          13,
		Category:         "Honey",
		Origin:           "Bangladesh",
		ShortDescription: "A premium honey infused with black seed flower nectar.",
		Details:          "Rich, aromatic black seed honey known for its unique taste.",
		Highlights: []string{
			"Distinct black seed aroma",
			"Premium quality honey",
			"Great for wellness routines",
		},
		Image:   "https://ghorerbazar.com/cdn/shop/files/Black-Seeds-honey-1000gm.jpg",
		Gallery: []string{"https://ghorerbazar.com/cdn/shop/files/Black-Seeds-honey-1000gm.jpg"},
		Href:    "https://ghorerbazar.com/products/black-seed-honey-1kg",
	},
}

// SeedProducts returns a copy of the static seed catalog.
func SeedProducts() []Product {
	products := make([]Product, len(seedProducts))
	copy(products, seedProducts)
	return products
}

// SeedProductBySlug resolves a seed product: exact slug match first, then a
// match against the product's href, then a prefix match either way.
func SeedProductBySlug(slug string) (Product, bool) {
	target := NormalizeSlug(slug)

	for _, product := range seedProducts {
		if NormalizeSlug(product.Slug) == target {
			return product, true
		}
	}

	for _, product := range seedProducts {
		if NormalizeSlug(product.Href) == target {
			return product, true
		}
	}

	for _, product := range seedProducts {
		candidate := NormalizeSlug(product.Slug)
		if strings.HasPrefix(candidate, target) || strings.HasPrefix(target, candidate) {
			return product, true
		}
	}

	return Product{}, false
}
