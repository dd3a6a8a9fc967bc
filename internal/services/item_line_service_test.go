package services

import (
	"testing"
	"time"

	"leton/internal/finance"
	"leton/internal/models"
	"leton/internal/pagination"
	"leton/internal/testutil"

	"gorm.io/gorm"
)

func setupItemLineTest(t *testing.T) (*gorm.DB, ItemLineServicer, *models.User, *models.Project) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	user := testutil.CreateTestUser(t, db)
	client := testutil.CreateTestClient(t, db, user.ID)
	project := testutil.CreateTestProject(t, db, user.ID, client.ID)

	projectService := NewProjectService(db, NewClientService(db))
	return db, NewItemLineService(db, projectService), user, project
}

func countItemLines(t *testing.T, db *gorm.DB, projectID uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.ItemLine{}).Where("project_id = ?", projectID).Count(&n).Error; err != nil {
		t.Fatalf("failed to count item lines: %v", err)
	}
	return n
}

func TestCreateItemLine_Root(t *testing.T) {
	_, svc, user, project := setupItemLineTest(t)

	line, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		Level:            1,
		Name:             "Groundworks",
		Contractor:       "Acme Construction",
		EstimatedCost:    50000,
		EstimatedRevenue: 65000,
		IsCategory:       true,
	})
	testutil.AssertNoError(t, err)

	if line.ID == 0 {
		t.Error("expected item line to be persisted with an ID")
	}
	if line.Level != 1 {
		t.Errorf("expected level 1, got %d", line.Level)
	}
	if line.Status != models.ItemLineStatusNotStarted {
		t.Errorf("expected default status not-started, got %s", line.Status)
	}
}

func TestCreateItemLine_RootWithoutContractor(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	_, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		Level:         1,
		Name:          "Groundworks",
		EstimatedCost: 1000,
	})
	testutil.AssertAppError(t, err, "CONTRACTOR_REQUIRED")

	if n := countItemLines(t, db, project.ID); n != 0 {
		t.Errorf("rejected create must write nothing, found %d rows", n)
	}
}

func TestCreateItemLine_ContractorInheritedFromAncestor(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	root := testutil.CreateTestItemLine(t, db, project.ID, 10000, 12000)

	child, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		ParentID:         &root.ID,
		Level:            2,
		Name:             "Excavation",
		EstimatedCost:    4000,
		EstimatedRevenue: 5000,
	})
	testutil.AssertNoError(t, err)

	// The grandchild inherits through two levels.
	_, err = svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		ParentID:         &child.ID,
		Level:            3,
		Name:             "Topsoil strip",
		EstimatedCost:    1000,
		EstimatedRevenue: 1200,
	})
	testutil.AssertNoError(t, err)
}

func TestCreateItemLine_LevelValidation(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	root := testutil.CreateTestItemLine(t, db, project.ID, 10000, 12000)
	child := testutil.CreateTestChildItemLine(t, db, root, 4000, 5000)
	grandchild := testutil.CreateTestChildItemLine(t, db, child, 1000, 1200)

	cases := []struct {
		name  string
		input ItemLineInput
	}{
		{"root with level 2", ItemLineInput{Level: 2, Name: "x", Contractor: "c", EstimatedCost: 1}},
		{"child with level 1", ItemLineInput{ParentID: &root.ID, Level: 1, Name: "x", EstimatedCost: 1}},
		{"child skipping a level", ItemLineInput{ParentID: &root.ID, Level: 3, Name: "x", EstimatedCost: 1}},
		{"fourth level", ItemLineInput{ParentID: &grandchild.ID, Level: 4, Name: "x", EstimatedCost: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateItemLine(user.ID, project.ID, tc.input)
			testutil.AssertAppError(t, err, "INVALID_LEVEL")
		})
	}
}

func TestCreateItemLine_ParentFromAnotherProject(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	otherClient := testutil.CreateTestClient(t, db, user.ID)
	otherProject := testutil.CreateTestProject(t, db, user.ID, otherClient.ID)
	foreign := testutil.CreateTestItemLine(t, db, otherProject.ID, 10000, 12000)

	_, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		ParentID:      &foreign.ID,
		Level:         2,
		Name:          "x",
		EstimatedCost: 1,
	})
	testutil.AssertAppError(t, err, "PARENT_NOT_FOUND")
}

func TestCreateItemLine_CapExceededWritesNothing(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 900)
	testutil.CreateTestChildItemLine(t, db, parent, 600, 200)
	before := countItemLines(t, db, project.ID)

	_, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		ParentID:      &parent.ID,
		Level:         2,
		Name:          "Over budget",
		EstimatedCost: 500,
	})
	testutil.AssertAppError(t, err, "CAP_EXCEEDED")

	if after := countItemLines(t, db, project.ID); after != before {
		t.Errorf("rejected create must write nothing, rows went %d -> %d", before, after)
	}
}

func TestCreateItemLine_RevenueCapExceeded(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 900)
	testutil.CreateTestChildItemLine(t, db, parent, 100, 600)

	_, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		ParentID:         &parent.ID,
		Level:            2,
		Name:             "x",
		EstimatedCost:    100,
		EstimatedRevenue: 400,
	})
	testutil.AssertAppError(t, err, "REVENUE_CAP_EXCEEDED")
}

func TestCreateItemLine_ExactFit(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 900)
	testutil.CreateTestChildItemLine(t, db, parent, 600, 200)

	// 400 cost and 700 revenue consume the remainder exactly.
	_, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		ParentID:         &parent.ID,
		Level:            2,
		Name:             "Exact fit",
		EstimatedCost:    400,
		EstimatedRevenue: 700,
	})
	testutil.AssertNoError(t, err)
}

func TestCreateItemLine_QuantityTimesPriceCountsAgainstCap(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 900)

	// No stored cost: 30 units at 40 each is 1200, over the 1000 cap.
	_, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		ParentID:  &parent.ID,
		Level:     2,
		Name:      "Rebar",
		Unit:      "t",
		Quantity:  30,
		UnitPrice: 40,
	})
	testutil.AssertAppError(t, err, "CAP_EXCEEDED")
}

func TestCreateItemLine_DueBeforeStart(t *testing.T) {
	_, svc, user, project := setupItemLineTest(t)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	due := start.AddDate(0, 0, -5)

	_, err := svc.CreateItemLine(user.ID, project.ID, ItemLineInput{
		Level:      1,
		Name:       "x",
		Contractor: "c",
		StartDate:  &start,
		DueDate:    &due,
	})
	testutil.AssertAppError(t, err, "DUE_BEFORE_START")
}

func TestUpdateItemLine_ExcludesSelfFromSiblings(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1000)
	child := testutil.CreateTestChildItemLine(t, db, parent, 600, 600)

	// Raising the only child to the full parent budget must not count its
	// own stored 600 against the cap.
	_, err := svc.UpdateItemLine(user.ID, child.ID, ItemLineInput{
		ParentID:         &parent.ID,
		Level:            2,
		Name:             child.Name,
		EstimatedCost:    1000,
		EstimatedRevenue: 1000,
	})
	testutil.AssertNoError(t, err)
}

func TestUpdateItemLine_CapStillEnforced(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1000)
	child := testutil.CreateTestChildItemLine(t, db, parent, 600, 600)
	testutil.CreateTestChildItemLine(t, db, parent, 300, 300)

	_, err := svc.UpdateItemLine(user.ID, child.ID, ItemLineInput{
		ParentID:      &parent.ID,
		Level:         2,
		Name:          child.Name,
		EstimatedCost: 800,
	})
	testutil.AssertAppError(t, err, "CAP_EXCEEDED")

	var persisted models.ItemLine
	testutil.AssertNoError(t, db.First(&persisted, child.ID).Error)
	if persisted.EstimatedCost != 600 {
		t.Errorf("rejected update must not change the row, cost is %v", persisted.EstimatedCost)
	}
}

func TestUpdateItemLine_SelfParent(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	line := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1000)

	_, err := svc.UpdateItemLine(user.ID, line.ID, ItemLineInput{
		ParentID:      &line.ID,
		Level:         2,
		Name:          line.Name,
		EstimatedCost: 100,
	})
	testutil.AssertAppError(t, err, "SELF_PARENT")
}

func TestUpdateItemLine_MoveWithChildren(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1000)
	child := testutil.CreateTestChildItemLine(t, db, parent, 400, 400)
	testutil.CreateTestChildItemLine(t, db, child, 100, 100)
	other := testutil.CreateTestItemLine(t, db, project.ID, 2000, 2000)

	_, err := svc.UpdateItemLine(user.ID, child.ID, ItemLineInput{
		ParentID:      &other.ID,
		Level:         2,
		Name:          child.Name,
		EstimatedCost: 400,
	})
	testutil.AssertAppError(t, err, "ITEM_HAS_CHILDREN")
}

func TestDeleteItemLine(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1000)
	child := testutil.CreateTestChildItemLine(t, db, parent, 400, 400)

	err := svc.DeleteItemLine(user.ID, parent.ID)
	testutil.AssertAppError(t, err, "ITEM_HAS_CHILDREN")

	testutil.AssertNoError(t, svc.DeleteItemLine(user.ID, child.ID))
	testutil.AssertNoError(t, svc.DeleteItemLine(user.ID, parent.ID))

	_, err = svc.GetItemLineByID(user.ID, parent.ID)
	testutil.AssertAppError(t, err, "ITEM_LINE_NOT_FOUND")
}

func TestMarkCompleted(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	line := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1000)

	_, err := svc.MarkCompleted(user.ID, line.ID)
	testutil.AssertNoError(t, err)

	var persisted models.ItemLine
	testutil.AssertNoError(t, db.First(&persisted, line.ID).Error)
	if persisted.Status != models.ItemLineStatusCompleted {
		t.Errorf("expected status completed, got %s", persisted.Status)
	}
	if !persisted.IsCompleted {
		t.Error("expected is_completed to be set")
	}
}

func TestGetItemLineByID_OwnershipScoped(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	line := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1000)
	stranger := testutil.CreateTestUser(t, db)

	_, err := svc.GetItemLineByID(stranger.ID, line.ID)
	testutil.AssertAppError(t, err, "ITEM_LINE_NOT_FOUND")

	got, err := svc.GetItemLineByID(user.ID, line.ID)
	testutil.AssertNoError(t, err)
	if got.ID != line.ID {
		t.Errorf("expected item %d, got %d", line.ID, got.ID)
	}
}

func TestGetProjectItemLines_Paginated(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	for i := 0; i < 5; i++ {
		testutil.CreateTestItemLine(t, db, project.ID, 100, 100)
	}

	page, err := svc.GetProjectItemLines(user.ID, project.ID, pagination.PageRequest{Page: 1, PageSize: 3})
	testutil.AssertNoError(t, err)

	if page.TotalItems != 5 {
		t.Errorf("expected 5 total items, got %d", page.TotalItems)
	}
	if len(page.Data) != 3 {
		t.Errorf("expected 3 items on page, got %d", len(page.Data))
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", page.TotalPages)
	}
}

func TestGetCaps(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	caps, err := svc.GetCaps(user.ID, project.ID, nil, nil)
	testutil.AssertNoError(t, err)
	if caps.Bounded {
		t.Error("root-level caps must be unbounded")
	}

	parent := testutil.CreateTestItemLine(t, db, project.ID, 1000, 900)
	child := testutil.CreateTestChildItemLine(t, db, parent, 600, 200)

	caps, err = svc.GetCaps(user.ID, project.ID, &parent.ID, nil)
	testutil.AssertNoError(t, err)
	if !caps.Bounded || caps.Cost != 400 || caps.Revenue != 700 {
		t.Errorf("expected bounded caps 400/700, got %+v", caps)
	}

	// Excluding the edited child returns the full parent budget.
	caps, err = svc.GetCaps(user.ID, project.ID, &parent.ID, &child.ID)
	testutil.AssertNoError(t, err)
	if caps.Cost != 1000 || caps.Revenue != 900 {
		t.Errorf("expected caps 1000/900 with child excluded, got %+v", caps)
	}
}

func TestRenderTable_CollapsedShowsOnlyRoots(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	root := testutil.CreateTestItemLine(t, db, project.ID, 1000, 1200)
	testutil.CreateTestChildItemLine(t, db, root, 400, 500)

	view, err := svc.RenderTable(user.ID, project.ID, finance.ViewCostTracking, finance.ViewSettings{}, finance.ExpandedSet{}, finance.RowFilter{})
	testutil.AssertNoError(t, err)

	if len(view.Rows) != 1 {
		t.Fatalf("expected 1 visible row, got %d", len(view.Rows))
	}
	if view.Rows[0].ID != root.ID {
		t.Errorf("expected root row, got item %d", view.Rows[0].ID)
	}
}

func TestRenderTable_ExpandedFormatsCurrency(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	root := testutil.CreateTestItemLine(t, db, project.ID, 250000, 300000)
	child := testutil.CreateTestChildItemLine(t, db, root, 1234.5, 2000)

	expanded := finance.ExpandedSet{root.ID: true}
	view, err := svc.RenderTable(user.ID, project.ID, finance.ViewCostTracking, finance.ViewSettings{}, expanded, finance.RowFilter{})
	testutil.AssertNoError(t, err)

	if len(view.Rows) != 2 {
		t.Fatalf("expected 2 visible rows, got %d", len(view.Rows))
	}
	if view.Rows[1].ID != child.ID || view.Rows[1].Depth != 1 {
		t.Errorf("expected child at depth 1, got %+v", view.Rows[1])
	}
	if view.Rows[0].Display[0] != "$250,000" {
		t.Errorf("expected $250,000, got %q", view.Rows[0].Display[0])
	}
	if view.Rows[1].Display[0] != "$1,235" {
		t.Errorf("expected rounded $1,235, got %q", view.Rows[1].Display[0])
	}
	if len(view.Columns) != len(view.Rows[0].Cells) {
		t.Errorf("columns and cells misaligned: %d vs %d", len(view.Columns), len(view.Rows[0].Cells))
	}
}

func TestRenderTable_SettingsGateOptionalFields(t *testing.T) {
	db, svc, user, project := setupItemLineTest(t)

	testutil.CreateTestItemLine(t, db, project.ID, 1000, 1200)

	view, err := svc.RenderTable(user.ID, project.ID, finance.ViewContractAmounts, finance.ViewSettings{}, finance.ExpandedSet{}, finance.RowFilter{})
	testutil.AssertNoError(t, err)
	if view.Rows[0].Contractor != "" {
		t.Error("contractor must be hidden when the setting is off")
	}

	view, err = svc.RenderTable(user.ID, project.ID, finance.ViewContractAmounts, finance.ViewSettings{ShowContractor: true}, finance.ExpandedSet{}, finance.RowFilter{})
	testutil.AssertNoError(t, err)
	if view.Rows[0].Contractor == "" {
		t.Error("contractor must be shown when the setting is on")
	}
}

func TestRenderTable_InvalidMode(t *testing.T) {
	_, svc, user, project := setupItemLineTest(t)

	_, err := svc.RenderTable(user.ID, project.ID, finance.ViewMode("totals"), finance.ViewSettings{}, finance.ExpandedSet{}, finance.RowFilter{})
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestRenderTable_OtherUsersProject(t *testing.T) {
	db, svc, _, project := setupItemLineTest(t)

	testutil.CreateTestItemLine(t, db, project.ID, 1000, 1200)
	stranger := testutil.CreateTestUser(t, db)

	_, err := svc.RenderTable(stranger.ID, project.ID, finance.ViewCostTracking, finance.ViewSettings{}, finance.ExpandedSet{}, finance.RowFilter{})
	testutil.AssertAppError(t, err, "PROJECT_NOT_FOUND")
}
