package models

import "time"

// ItemLineStatus represents the work state of an item line.
type ItemLineStatus string

const (
	ItemLineStatusNotStarted ItemLineStatus = "not-started"
	ItemLineStatusInProgress ItemLineStatus = "in-progress"
	ItemLineStatusCompleted  ItemLineStatus = "completed"
	ItemLineStatusOnHold     ItemLineStatus = "on-hold"
)

// MaxItemLineLevel caps tree depth at main-category / category / work-item.
const MaxItemLineLevel = 3

// ItemLine is a single row in a project's cost/revenue breakdown tree.
// Levels 1-3 denote main-category, category, and work-item depth. Monetary
// amounts are project-currency floats; EstimatedCost may be stored directly
// or derived as Quantity * UnitPrice when zero.
type ItemLine struct {
	Base
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	ParentID  *uint  `gorm:"index" json:"parent_id,omitempty"`
	Level     int    `gorm:"not null" json:"level"`
	Name      string `gorm:"not null" json:"item_line"`
	CostCode  string `json:"cost_code"`

	Contractor string  `json:"contractor"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`

	EstimatedCost    float64 `json:"estimated_cost"`
	EstimatedRevenue float64 `json:"estimated_revenue"`
	ActualCost       float64 `json:"actual_cost"`
	ActualRevenue    float64 `json:"actual_revenue"`

	// Counters adjusted only by the invoice/bill/payment services inside
	// database transactions.
	Invoiced float64 `json:"invoiced"`
	Paid     float64 `json:"paid"`
	Billed   float64 `json:"billed"`
	Payments float64 `json:"payments"`

	Status      ItemLineStatus `gorm:"not null;default:not-started" json:"status"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	DependsOn   *uint          `json:"depends_on,omitempty"`
	IsCategory  bool           `json:"is_category"`
	IsCompleted bool           `json:"is_completed"`

	// Relationships
	Parent   *ItemLine  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []ItemLine `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

// Completed reports whether the row should display as finished; the flag and
// the status are redundant encodings, so either one counts.
func (l *ItemLine) Completed() bool {
	return l.IsCompleted || l.Status == ItemLineStatusCompleted
}
