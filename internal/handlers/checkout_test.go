package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	sale := 90.0
	items := []checkoutItemRequest{
		{Name: "Crystal Honey", Price: 100, SalePrice: &sale, Quantity: 2},
		{Name: "Green Tea", Price: 50, Quantity: 1},
	}

	subtotal, totalQty := computeTotals(items)
	assert.Equal(t, 230.0, subtotal)
	assert.Equal(t, 3, totalQty)

	assert.Equal(t, 60.0, shippingCostFor("inside"))
	assert.Equal(t, 290.0, subtotal+shippingCostFor("inside"))
}

func TestShippingCostFor(t *testing.T) {
	assert.Equal(t, 60.0, shippingCostFor("inside"))
	assert.Equal(t, 120.0, shippingCostFor("outside"))
	assert.Equal(t, 0.0, shippingCostFor("express"))
	assert.Equal(t, 0.0, shippingCostFor(""))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("0b36d1b6-5c4a-4b8e-9f21-3d4a5b6c7d8e"))
	assert.True(t, isUUID("0B36D1B6-5C4A-4B8E-9F21-3D4A5B6C7D8E"))
	assert.False(t, isUUID("crystal-honey-1kg"))
	assert.False(t, isUUID("0b36d1b65c4a4b8e9f213d4a5b6c7d8e"))
	assert.False(t, isUUID(""))
}

// A nil database proves validation rejections happen before any
// persistence is attempted.
func checkoutTestApp() *fiber.App {
	app := fiber.New()
	handler := NewCheckoutHandler(nil, nil)
	app.Post("/api/checkout", handler.Checkout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCheckoutRejectsMissingCustomerDetails(t *testing.T) {
	app := checkoutTestApp()

	body := `{"name":"","phone":"","address":"","items":[{"name":"Honey","price":100,"quantity":1}]}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/api/checkout", body))
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	app := checkoutTestApp()

	body := `{"name":"Guest","phone":"01700000000","address":"Dhaka","items":[]}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/api/checkout", body))
}

func TestCheckoutRejectsMalformedBody(t *testing.T) {
	app := checkoutTestApp()

	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/api/checkout", `{not json`))
}
