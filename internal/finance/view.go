package finance

import "leton/internal/models"

// ViewMode selects which derived monetary columns a financial table shows.
type ViewMode string

const (
	ViewContractAmounts ViewMode = "contract-amounts"
	ViewInvoicedPaid    ViewMode = "invoiced-paid"
	ViewCostsBills      ViewMode = "costs-bills"
	ViewCostTracking    ViewMode = "cost-tracking"
)

// Valid reports whether the view mode is one of the supported lenses.
func (m ViewMode) Valid() bool {
	switch m {
	case ViewContractAmounts, ViewInvoicedPaid, ViewCostsBills, ViewCostTracking:
		return true
	}
	return false
}

// ViewSettings controls optional column visibility per view mode. All flags
// default to false; absent settings simply hide the column.
type ViewSettings struct {
	ShowContractor   bool `json:"show_contractor"`
	ShowDates        bool `json:"show_dates"`
	ShowDependencies bool `json:"show_dependencies"`
	ShowChangeOrders bool `json:"show_change_orders"`
}

// Column describes one monetary column of a view mode.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Cell is one derived monetary value of a rendered row.
type Cell struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

// Columns returns the ordered monetary column set for a view mode. Optional
// non-monetary columns (contractor, dates, dependencies) are appended by the
// caller based on settings; they carry no derived amounts.
func Columns(mode ViewMode) []Column {
	switch mode {
	case ViewContractAmounts:
		return []Column{
			{Key: "original_amount", Label: "Original Amount"},
			{Key: "revised_amount", Label: "Revised Amount"},
		}
	case ViewInvoicedPaid:
		return []Column{
			{Key: "invoiced", Label: "Invoiced"},
			{Key: "paid", Label: "Paid"},
			{Key: "balance", Label: "Balance"},
		}
	case ViewCostsBills:
		return []Column{
			{Key: "billed", Label: "Billed"},
			{Key: "payments", Label: "Payments"},
			{Key: "outstanding", Label: "Outstanding"},
		}
	case ViewCostTracking:
		return []Column{
			{Key: "estimated_cost", Label: "Estimated"},
			{Key: "actual", Label: "Actual"},
			{Key: "paid", Label: "Paid"},
		}
	}
	return nil
}

// RenderRow computes the derived monetary cells of one item line under the
// given view mode. It is a pure function of the row and mode; the same flat
// list renders identically in the flat and hierarchical tables.
func RenderRow(l *models.ItemLine, mode ViewMode) []Cell {
	switch mode {
	case ViewContractAmounts:
		original := l.Quantity * l.UnitPrice
		revised := original
		if l.ActualCost != 0 {
			revised = l.ActualCost
		}
		return []Cell{
			{Key: "original_amount", Amount: original},
			{Key: "revised_amount", Amount: revised},
		}
	case ViewInvoicedPaid:
		return []Cell{
			{Key: "invoiced", Amount: l.Invoiced},
			{Key: "paid", Amount: l.Paid},
			{Key: "balance", Amount: l.Invoiced - l.Paid},
		}
	case ViewCostsBills:
		return []Cell{
			{Key: "billed", Amount: l.Billed},
			{Key: "payments", Amount: l.Payments},
			{Key: "outstanding", Amount: l.Billed - l.Payments},
		}
	case ViewCostTracking:
		return []Cell{
			{Key: "estimated_cost", Amount: l.EstimatedCost},
			{Key: "actual", Amount: l.Billed},
			{Key: "paid", Amount: l.Payments},
		}
	}
	return nil
}
