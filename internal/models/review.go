package models

import "github.com/google/uuid"

// Review statuses.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review is a moderated guest review. ReviewerHash is a salted one-way
// hash of the client IP and user agent, never the raw values.
type Review struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product      *Product  `json:"product,omitempty"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ReviewerHash string    `gorm:"index" json:"-"`
	GuestName    string    `json:"guest_name"`
	Status       string    `gorm:"index" json:"status"`
}
