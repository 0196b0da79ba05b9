package models

// Profile represents a back-office account. Only profiles with IsAdmin
// set may reach the admin endpoints.
type Profile struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}
