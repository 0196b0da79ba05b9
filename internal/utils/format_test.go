package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTaka(t *testing.T) {
	assert.Equal(t, "৳ 650", FormatTaka(650))
	assert.Equal(t, "৳ 1,100", FormatTaka(1100))
	assert.Equal(t, "৳ 12,500", FormatTaka(12500))
	assert.Equal(t, "৳ 1,472", FormatTaka(1472.9))
	assert.Equal(t, "৳ 0", FormatTaka(0))
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "9% off", FormatDiscount(1100, 1000))
	assert.Equal(t, "12% off", FormatDiscount(2500, 2200))
	assert.Equal(t, "10% off", FormatDiscount(1600, 1440))

	assert.Equal(t, "", FormatDiscount(1100, 1100))
	assert.Equal(t, "", FormatDiscount(1100, 1200))
	assert.Equal(t, "", FormatDiscount(0, 100))
	assert.Equal(t, "", FormatDiscount(1100, 0))
}
