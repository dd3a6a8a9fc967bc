package models

// Client represents a customer of the construction business.
type Client struct {
	Base
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Name    string `gorm:"not null" json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`

	// Relationships
	Projects []Project `gorm:"foreignKey:ClientID" json:"projects,omitempty"`
	Contacts []Contact `gorm:"foreignKey:ClientID" json:"contacts,omitempty"`
}
