package models

import "time"

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice represents an outgoing invoice raised against an item line.
type Invoice struct {
	Base
	ProjectID  uint          `gorm:"not null;index" json:"project_id"`
	ItemLineID uint          `gorm:"not null;index" json:"item_line_id"`
	Number     string        `gorm:"not null" json:"number"`
	Amount     float64       `gorm:"not null" json:"amount"`
	Status     InvoiceStatus `gorm:"not null;default:draft" json:"status"`
	IssueDate  time.Time     `gorm:"not null" json:"issue_date"`
	DueDate    *time.Time    `json:"due_date,omitempty"`
	Notes      string        `json:"notes"`

	// Relationships
	ItemLine ItemLine `gorm:"foreignKey:ItemLineID" json:"item_line,omitempty"`
}
