package models

// Contact represents a person attached to a client.
type Contact struct {
	Base
	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Name     string `gorm:"not null" json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
