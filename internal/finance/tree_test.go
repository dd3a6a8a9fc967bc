package finance

import (
	"testing"

	"leton/internal/models"
)

// buildTree returns a three-level flat list:
//
//	1 Groundwork (level 1)
//	  2 Excavation (level 2)
//	    3 Trenching (level 3)
//	  4 Piling (level 2)
//	5 Structure (level 1)
func buildTree() []models.ItemLine {
	mk := func(id uint, parent *uint, level int, name string, status models.ItemLineStatus) models.ItemLine {
		l := models.ItemLine{Level: level, Name: name, Status: status, ParentID: parent}
		l.ID = id
		return l
	}
	p := func(id uint) *uint { return &id }

	return []models.ItemLine{
		mk(1, nil, 1, "Groundwork", models.ItemLineStatusInProgress),
		mk(2, p(1), 2, "Excavation", models.ItemLineStatusNotStarted),
		mk(3, p(2), 3, "Trenching", models.ItemLineStatusNotStarted),
		mk(4, p(1), 2, "Piling", models.ItemLineStatusCompleted),
		mk(5, nil, 1, "Structure", models.ItemLineStatusNotStarted),
	}
}

func names(rows []VisibleRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Item.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVisibleRows(t *testing.T) {
	items := buildTree()

	t.Run("collapsed_shows_roots_only", func(t *testing.T) {
		rows := VisibleRows(items, ExpandedSet{}, RowFilter{})
		if got := names(rows); !equal(got, []string{"Groundwork", "Structure"}) {
			t.Errorf("expected roots only, got %v", got)
		}
	})

	t.Run("expanded_parent_reveals_children_in_preorder", func(t *testing.T) {
		rows := VisibleRows(items, ExpandedSet{1: true, 2: true}, RowFilter{})
		want := []string{"Groundwork", "Excavation", "Trenching", "Piling", "Structure"}
		if got := names(rows); !equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("collapsed_midlevel_hides_subtree", func(t *testing.T) {
		rows := VisibleRows(items, ExpandedSet{1: true}, RowFilter{})
		want := []string{"Groundwork", "Excavation", "Piling", "Structure"}
		if got := names(rows); !equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("depth_tracks_indentation", func(t *testing.T) {
		rows := VisibleRows(items, ExpandedSet{1: true, 2: true}, RowFilter{})
		depths := map[string]int{}
		for _, r := range rows {
			depths[r.Item.Name] = r.Depth
		}
		if depths["Groundwork"] != 0 || depths["Excavation"] != 1 || depths["Trenching"] != 2 {
			t.Errorf("unexpected depths: %v", depths)
		}
	})

	t.Run("expanded_nonmatching_parent_reveals_matching_children", func(t *testing.T) {
		rows := VisibleRows(items, ExpandedSet{1: true, 2: true}, RowFilter{Search: "trench"})
		if got := names(rows); !equal(got, []string{"Trenching"}) {
			t.Errorf("expected only the matching grandchild, got %v", got)
		}
	})

	t.Run("collapsed_parent_hides_matching_children", func(t *testing.T) {
		rows := VisibleRows(items, ExpandedSet{}, RowFilter{Search: "trench"})
		if len(rows) != 0 {
			t.Errorf("expected no rows under a collapsed parent, got %v", names(rows))
		}
	})

	t.Run("status_filter_per_node", func(t *testing.T) {
		rows := VisibleRows(items, ExpandedSet{1: true}, RowFilter{Status: models.ItemLineStatusCompleted})
		if got := names(rows); !equal(got, []string{"Piling"}) {
			t.Errorf("expected only completed rows, got %v", got)
		}
	})

	t.Run("search_matches_cost_code", func(t *testing.T) {
		withCode := buildTree()
		withCode[4].CostCode = "ST-100"
		rows := VisibleRows(withCode, ExpandedSet{}, RowFilter{Search: "st-1"})
		if got := names(rows); !equal(got, []string{"Structure"}) {
			t.Errorf("expected cost-code match, got %v", got)
		}
	})
}

func TestExpandedSetToggle(t *testing.T) {
	s := ExpandedSet{}
	s.Toggle(7)
	if !s[7] {
		t.Error("expected id 7 expanded after toggle")
	}
	s.Toggle(7)
	if s[7] {
		t.Error("expected id 7 collapsed after second toggle")
	}
}
