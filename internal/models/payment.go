package models

import "time"

// PaymentDirection distinguishes money received from money paid out.
type PaymentDirection string

const (
	PaymentIncoming PaymentDirection = "incoming"
	PaymentOutgoing PaymentDirection = "outgoing"
)

// Payment represents a recorded payment against an item line, optionally
// linked to the invoice or bill it settles.
type Payment struct {
	Base
	ProjectID   uint             `gorm:"not null;index" json:"project_id"`
	ItemLineID  uint             `gorm:"not null;index" json:"item_line_id"`
	InvoiceID   *uint            `gorm:"index" json:"invoice_id,omitempty"`
	BillID      *uint            `gorm:"index" json:"bill_id,omitempty"`
	Direction   PaymentDirection `gorm:"not null" json:"direction"`
	Amount      float64          `gorm:"not null" json:"amount"`
	PaymentDate time.Time        `gorm:"not null" json:"payment_date"`
	Method      string           `json:"method"`
	Reference   string           `json:"reference"`

	// Relationships
	ItemLine ItemLine `gorm:"foreignKey:ItemLineID" json:"item_line,omitempty"`
	Invoice  *Invoice `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
	Bill     *Bill    `gorm:"foreignKey:BillID" json:"bill,omitempty"`
}
