package models

import "time"

// BillStatus represents the lifecycle state of a supplier bill.
type BillStatus string

const (
	BillStatusReceived BillStatus = "received"
	BillStatusApproved BillStatus = "approved"
	BillStatusPaid     BillStatus = "paid"
	BillStatusDisputed BillStatus = "disputed"
)

// Bill represents an incoming supplier bill charged to an item line.
type Bill struct {
	Base
	ProjectID  uint       `gorm:"not null;index" json:"project_id"`
	ItemLineID uint       `gorm:"not null;index" json:"item_line_id"`
	SupplierID *uint      `gorm:"index" json:"supplier_id,omitempty"`
	Number     string     `gorm:"not null" json:"number"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Status     BillStatus `gorm:"not null;default:received" json:"status"`
	IssueDate  time.Time  `gorm:"not null" json:"issue_date"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Notes      string     `json:"notes"`

	// Relationships
	ItemLine ItemLine  `gorm:"foreignKey:ItemLineID" json:"item_line,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}
