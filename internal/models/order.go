package models

import "github.com/google/uuid"

// Order statuses set by admin actions. Transitions are deliberately
// unconstrained: any status may follow any other.
const (
	OrderStatusPending       = "pending"
	OrderStatusConfirmed     = "confirmed"
	OrderStatusCancelled     = "cancelled"
	OrderStatusSentToCourier = "sent_to_courier"
)

// OrderStatuses lists every status an order may hold.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusCancelled,
	OrderStatusSentToCourier,
}

// Order is a guest order captured at checkout. Invariants:
// Total = Subtotal + ShippingCost, TotalQty = sum of item quantities.
type Order struct {
	BaseModel
	Status             string      `gorm:"index" json:"status"`
	TotalQty           int         `json:"total_qty"`
	Subtotal           float64     `json:"subtotal"`
	ShippingCost       float64     `json:"shipping_cost"`
	Total              float64     `json:"total"`
	GuestName          string      `json:"guest_name"`
	GuestPhone         string      `json:"guest_phone"`
	ShippingLine1      string      `json:"shipping_line1"`
	ShippingLine2      string      `json:"shipping_line2"`
	ShippingCity       string      `json:"shipping_city"`
	ShippingState      string      `json:"shipping_state"`
	ShippingPostalCode string      `json:"shipping_postal_code"`
	PaymentMethod      string      `json:"payment_method"`
	Note               string      `json:"note"`
	Items              []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName string     `json:"product_name"`
	Variant     string     `json:"variant"`
	UnitPrice   float64    `json:"unit_price"`
	Quantity    int        `json:"quantity"`
	TotalPrice  float64    `json:"total_price"`
}

// OrderStatusHistory records every admin status change.
type OrderStatusHistory struct {
	BaseModel
	OrderID uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	Status  string    `json:"status"`
	Note    string    `json:"note"`
}
