package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var takaPrinter = message.NewPrinter(language.English)

// FormatTaka renders an amount in Bangladeshi Taka with thousand grouping,
// e.g. 1100 -> "৳ 1,100". Fractions are dropped; prices are whole Taka.
func FormatTaka(value float64) string {
	return takaPrinter.Sprintf("৳ %d", int64(value))
}

// FormatDiscount renders the rounded percentage saved when a sale price
// undercuts the regular price, e.g. "9% off". It returns an empty string
// when there is no effective discount.
func FormatDiscount(price, salePrice float64) string {
	if salePrice <= 0 || price <= 0 || salePrice >= price {
		return ""
	}
	percent := int(math.Round((price - salePrice) / price * 100))
	return takaPrinter.Sprintf("%d%% off", percent)
}
