package finance

import (
	"strings"

	"leton/internal/models"
)

// ExpandedSet tracks which parent rows are expanded in the hierarchical view.
type ExpandedSet map[uint]bool

// Toggle flips the expanded state of one row id.
func (s ExpandedSet) Toggle(id uint) {
	if s[id] {
		delete(s, id)
	} else {
		s[id] = true
	}
}

// RowFilter holds the per-node search and status filters of the hierarchical
// view. Zero values match everything.
type RowFilter struct {
	Search string
	Status models.ItemLineStatus
}

// Matches reports whether a single item line passes the filter. The filter is
// evaluated per node, never inherited from parents.
func (f RowFilter) Matches(l *models.ItemLine) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(l.Name), needle) ||
		strings.Contains(strings.ToLower(l.CostCode), needle)
}

// VisibleRow is one emitted row of the tree projection with its indentation
// depth (0 for roots).
type VisibleRow struct {
	Item  *models.ItemLine
	Depth int
}

// VisibleRows projects the flat item list into the ordered visible subset of
// the hierarchical table. Traversal is depth-first pre-order from the level-1
// rows in natural list order. A node is emitted only when it matches the
// filter; its children are visited only when the node is expanded, regardless
// of whether the node itself matched. A collapsed parent therefore hides its
// whole subtree, while an expanded non-matching parent still reveals matching
// children.
func VisibleRows(items []models.ItemLine, expanded ExpandedSet, filter RowFilter) []VisibleRow {
	children := make(map[uint][]*models.ItemLine)
	var roots []*models.ItemLine
	for i := range items {
		l := &items[i]
		if l.Level == 1 {
			roots = append(roots, l)
		} else if l.ParentID != nil {
			children[*l.ParentID] = append(children[*l.ParentID], l)
		}
	}

	var visible []VisibleRow
	var walk func(l *models.ItemLine, depth int)
	walk = func(l *models.ItemLine, depth int) {
		if filter.Matches(l) {
			visible = append(visible, VisibleRow{Item: l, Depth: depth})
		}
		if !expanded[l.ID] {
			return
		}
		for _, child := range children[l.ID] {
			walk(child, depth+1)
		}
	}

	for _, root := range roots {
		walk(root, 0)
	}
	return visible
}
