// Package finance holds the pure domain computations behind the item-line
// breakdown tree: parent/child budget roll-ups, the multi-view table
// renderer, the expand/collapse projection, and display formatting. Nothing
// in this package touches the database or mutates its inputs.
package finance

import "leton/internal/models"

// EffectiveCost returns the item line's stored estimated cost when non-zero,
// falling back to quantity times unit price.
func EffectiveCost(l *models.ItemLine) float64 {
	if l.EstimatedCost != 0 {
		return l.EstimatedCost
	}
	return l.Quantity * l.UnitPrice
}

// Caps is the remaining estimated-cost and estimated-revenue budget a parent
// item line can still hand out to a new or edited child. Bounded is false for
// root-level creation, where no cap applies.
type Caps struct {
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Bounded bool    `json:"bounded"`
}

// ComputeCaps derives the remaining budget under parent given its existing
// children. Callers must exclude the row currently being edited from
// siblings. Sums that already exceed the parent clamp to zero, never
// negative.
func ComputeCaps(parent *models.ItemLine, siblings []models.ItemLine) Caps {
	if parent == nil {
		return Caps{}
	}

	var usedCost, usedRevenue float64
	for i := range siblings {
		usedCost += EffectiveCost(&siblings[i])
		usedRevenue += siblings[i].EstimatedRevenue
	}

	caps := Caps{
		Cost:    EffectiveCost(parent) - usedCost,
		Revenue: parent.EstimatedRevenue - usedRevenue,
		Bounded: true,
	}
	if caps.Cost < 0 {
		caps.Cost = 0
	}
	if caps.Revenue < 0 {
		caps.Revenue = 0
	}
	return caps
}

// AllowsCost reports whether a prospective child cost fits under the cap.
func (c Caps) AllowsCost(cost float64) bool {
	return !c.Bounded || cost <= c.Cost
}

// AllowsRevenue reports whether a prospective child revenue fits under the cap.
func (c Caps) AllowsRevenue(revenue float64) bool {
	return !c.Bounded || revenue <= c.Revenue
}

// ContractorInChain walks the parent chain starting at item and reports
// whether any ancestor carries a contractor. byID must contain every item
// line of the project keyed by ID; broken references terminate the walk.
func ContractorInChain(item *models.ItemLine, byID map[uint]*models.ItemLine) bool {
	seen := make(map[uint]bool)
	for cur := item; cur != nil; {
		if cur.Contractor != "" {
			return true
		}
		if cur.ParentID == nil || seen[cur.ID] {
			return false
		}
		seen[cur.ID] = true
		cur = byID[*cur.ParentID]
	}
	return false
}
