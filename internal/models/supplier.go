package models

// Supplier represents a vendor the business buys from.
type Supplier struct {
	Base
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Name    string `gorm:"not null" json:"name"`
	Trade   string `json:"trade"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	// Relationships
	Bills []Bill `gorm:"foreignKey:SupplierID" json:"bills,omitempty"`
}
