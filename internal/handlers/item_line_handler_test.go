package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/finance"
	"leton/internal/models"
	"leton/internal/pagination"
	"leton/internal/services"
)

// --- mock item line service ---

type mockItemLineService struct {
	createItemLineFn      func(userID, projectID uint, in services.ItemLineInput) (*models.ItemLine, error)
	updateItemLineFn      func(userID, itemLineID uint, in services.ItemLineInput) (*models.ItemLine, error)
	deleteItemLineFn      func(userID, itemLineID uint) error
	markCompletedFn       func(userID, itemLineID uint) (*models.ItemLine, error)
	getItemLineByIDFn     func(userID, itemLineID uint) (*models.ItemLine, error)
	getProjectItemLinesFn func(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.ItemLine], error)
	getCapsFn             func(userID, projectID uint, parentID, excludeID *uint) (*finance.Caps, error)
	renderTableFn         func(userID, projectID uint, mode finance.ViewMode, settings finance.ViewSettings, expanded finance.ExpandedSet, filter finance.RowFilter) (*services.TableView, error)
}

func (m *mockItemLineService) CreateItemLine(userID, projectID uint, in services.ItemLineInput) (*models.ItemLine, error) {
	if m.createItemLineFn != nil {
		return m.createItemLineFn(userID, projectID, in)
	}
	return &models.ItemLine{}, nil
}

func (m *mockItemLineService) UpdateItemLine(userID, itemLineID uint, in services.ItemLineInput) (*models.ItemLine, error) {
	if m.updateItemLineFn != nil {
		return m.updateItemLineFn(userID, itemLineID, in)
	}
	return &models.ItemLine{}, nil
}

func (m *mockItemLineService) DeleteItemLine(userID, itemLineID uint) error {
	if m.deleteItemLineFn != nil {
		return m.deleteItemLineFn(userID, itemLineID)
	}
	return nil
}

func (m *mockItemLineService) MarkCompleted(userID, itemLineID uint) (*models.ItemLine, error) {
	if m.markCompletedFn != nil {
		return m.markCompletedFn(userID, itemLineID)
	}
	return &models.ItemLine{}, nil
}

func (m *mockItemLineService) GetItemLineByID(userID, itemLineID uint) (*models.ItemLine, error) {
	if m.getItemLineByIDFn != nil {
		return m.getItemLineByIDFn(userID, itemLineID)
	}
	return &models.ItemLine{}, nil
}

func (m *mockItemLineService) GetProjectItemLines(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.ItemLine], error) {
	if m.getProjectItemLinesFn != nil {
		return m.getProjectItemLinesFn(userID, projectID, page)
	}
	resp := pagination.NewPageResponse([]models.ItemLine{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockItemLineService) GetCaps(userID, projectID uint, parentID, excludeID *uint) (*finance.Caps, error) {
	if m.getCapsFn != nil {
		return m.getCapsFn(userID, projectID, parentID, excludeID)
	}
	return &finance.Caps{}, nil
}

func (m *mockItemLineService) RenderTable(userID, projectID uint, mode finance.ViewMode, settings finance.ViewSettings, expanded finance.ExpandedSet, filter finance.RowFilter) (*services.TableView, error) {
	if m.renderTableFn != nil {
		return m.renderTableFn(userID, projectID, mode, settings, expanded, filter)
	}
	return &services.TableView{Mode: mode, Columns: finance.Columns(mode), Rows: []services.TableRow{}}, nil
}

var _ services.ItemLineServicer = (*mockItemLineService)(nil)

func setupItemLineRouter(handler *ItemLineHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/projects/:id/item-lines", handler.CreateItemLine)
	auth.GET("/projects/:id/item-lines", handler.GetItemLines)
	auth.GET("/projects/:id/item-lines/table", handler.GetTable)
	auth.GET("/projects/:id/item-lines/caps", handler.GetCaps)
	auth.GET("/item-lines/:id", handler.GetItemLine)
	auth.PUT("/item-lines/:id", handler.UpdateItemLine)
	auth.POST("/item-lines/:id/complete", handler.MarkCompleted)
	auth.DELETE("/item-lines/:id", handler.DeleteItemLine)
	return r
}

func TestItemLineHandler_CreateItemLine(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockItemLineService{
			createItemLineFn: func(_, projectID uint, in services.ItemLineInput) (*models.ItemLine, error) {
				return &models.ItemLine{
					Base:          models.Base{ID: 10},
					ProjectID:     projectID,
					Level:         in.Level,
					Name:          in.Name,
					Contractor:    in.Contractor,
					EstimatedCost: in.EstimatedCost,
				}, nil
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "POST", "/projects/1/item-lines",
			`{"level":1,"item_line":"Groundworks","contractor":"Acme","estimated_cost":50000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		line := parseJSON(t, rec)["item_line"].(map[string]interface{})
		if line["item_line"] != "Groundworks" {
			t.Errorf("expected Groundworks, got %v", line["item_line"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewItemLineHandler(&mockItemLineService{})
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "POST", "/projects/1/item-lines", `{"level":1,"estimated_cost":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on level above three", func(t *testing.T) {
		handler := NewItemLineHandler(&mockItemLineService{})
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "POST", "/projects/1/item-lines", `{"level":4,"item_line":"Too deep"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when cap exceeded", func(t *testing.T) {
		svc := &mockItemLineService{
			createItemLineFn: func(_, _ uint, _ services.ItemLineInput) (*models.ItemLine, error) {
				return nil, apperrors.ErrCapExceeded
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "POST", "/projects/1/item-lines",
			`{"parent_id":1,"level":2,"item_line":"Over","estimated_cost":999999}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CAP_EXCEEDED")
	})
}

func TestItemLineHandler_GetTable(t *testing.T) {
	t.Run("passes parsed query to service", func(t *testing.T) {
		var captured struct {
			mode     finance.ViewMode
			settings finance.ViewSettings
			expanded finance.ExpandedSet
			filter   finance.RowFilter
		}
		svc := &mockItemLineService{
			renderTableFn: func(_, _ uint, mode finance.ViewMode, settings finance.ViewSettings, expanded finance.ExpandedSet, filter finance.RowFilter) (*services.TableView, error) {
				captured.mode = mode
				captured.settings = settings
				captured.expanded = expanded
				captured.filter = filter
				return &services.TableView{Mode: mode, Rows: []services.TableRow{}}, nil
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "GET",
			"/projects/1/item-lines/table?view=invoiced-paid&expanded=3,7&search=concrete&status=in-progress&show_contractor=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.mode != finance.ViewInvoicedPaid {
			t.Errorf("expected invoiced-paid mode, got %s", captured.mode)
		}
		if !captured.expanded[3] || !captured.expanded[7] || len(captured.expanded) != 2 {
			t.Errorf("expected expanded {3,7}, got %v", captured.expanded)
		}
		if captured.filter.Search != "concrete" || captured.filter.Status != models.ItemLineStatusInProgress {
			t.Errorf("unexpected filter: %+v", captured.filter)
		}
		if !captured.settings.ShowContractor || captured.settings.ShowDates {
			t.Errorf("unexpected settings: %+v", captured.settings)
		}
	})

	t.Run("defaults to cost-tracking view", func(t *testing.T) {
		var mode finance.ViewMode
		svc := &mockItemLineService{
			renderTableFn: func(_, _ uint, m finance.ViewMode, _ finance.ViewSettings, _ finance.ExpandedSet, _ finance.RowFilter) (*services.TableView, error) {
				mode = m
				return &services.TableView{Mode: m, Rows: []services.TableRow{}}, nil
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		doRequest(r, "GET", "/projects/1/item-lines/table", "")

		if mode != finance.ViewCostTracking {
			t.Errorf("expected cost-tracking default, got %s", mode)
		}
	})

	t.Run("returns 400 on malformed expanded list", func(t *testing.T) {
		handler := NewItemLineHandler(&mockItemLineService{})
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "GET", "/projects/1/item-lines/table?expanded=3,abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid status filter", func(t *testing.T) {
		handler := NewItemLineHandler(&mockItemLineService{})
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "GET", "/projects/1/item-lines/table?status=done", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestItemLineHandler_GetCaps(t *testing.T) {
	t.Run("passes parent and exclude IDs", func(t *testing.T) {
		var gotParent, gotExclude *uint
		svc := &mockItemLineService{
			getCapsFn: func(_, _ uint, parentID, excludeID *uint) (*finance.Caps, error) {
				gotParent = parentID
				gotExclude = excludeID
				return &finance.Caps{Cost: 400, Revenue: 700, Bounded: true}, nil
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "GET", "/projects/1/item-lines/caps?parent_id=5&exclude_id=9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotParent == nil || *gotParent != 5 {
			t.Errorf("expected parent_id 5, got %v", gotParent)
		}
		if gotExclude == nil || *gotExclude != 9 {
			t.Errorf("expected exclude_id 9, got %v", gotExclude)
		}
		caps := parseJSON(t, rec)["caps"].(map[string]interface{})
		if caps["cost"].(float64) != 400 {
			t.Errorf("expected cost 400, got %v", caps["cost"])
		}
	})

	t.Run("omitted parent means unbounded", func(t *testing.T) {
		svc := &mockItemLineService{
			getCapsFn: func(_, _ uint, parentID, _ *uint) (*finance.Caps, error) {
				if parentID != nil {
					t.Errorf("expected nil parent, got %v", *parentID)
				}
				return &finance.Caps{}, nil
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "GET", "/projects/1/item-lines/caps", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		caps := parseJSON(t, rec)["caps"].(map[string]interface{})
		if caps["bounded"].(bool) {
			t.Error("expected unbounded caps")
		}
	})
}

func TestItemLineHandler_UpdateItemLine(t *testing.T) {
	t.Run("returns 409 when item has children", func(t *testing.T) {
		svc := &mockItemLineService{
			updateItemLineFn: func(_, _ uint, _ services.ItemLineInput) (*models.ItemLine, error) {
				return nil, apperrors.ErrItemHasChildren
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "PUT", "/item-lines/1", `{"level":1,"item_line":"Moved"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ITEM_HAS_CHILDREN")
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockItemLineService{
			updateItemLineFn: func(_, _ uint, _ services.ItemLineInput) (*models.ItemLine, error) {
				return nil, apperrors.ErrItemLineNotFound
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "PUT", "/item-lines/999", `{"level":1,"item_line":"Ghost"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestItemLineHandler_MarkCompleted(t *testing.T) {
	t.Run("returns 200 with completed line", func(t *testing.T) {
		svc := &mockItemLineService{
			markCompletedFn: func(_, itemLineID uint) (*models.ItemLine, error) {
				return &models.ItemLine{
					Base:        models.Base{ID: itemLineID},
					Status:      models.ItemLineStatusCompleted,
					IsCompleted: true,
				}, nil
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "POST", "/item-lines/4/complete", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		line := parseJSON(t, rec)["item_line"].(map[string]interface{})
		if line["status"] != "completed" {
			t.Errorf("expected completed status, got %v", line["status"])
		}
	})
}

func TestItemLineHandler_DeleteItemLine(t *testing.T) {
	t.Run("returns 409 when item has children", func(t *testing.T) {
		svc := &mockItemLineService{
			deleteItemLineFn: func(_, _ uint) error {
				return apperrors.ErrItemHasChildren
			},
		}
		handler := NewItemLineHandler(svc)
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "DELETE", "/item-lines/1", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewItemLineHandler(&mockItemLineService{})
		r := setupItemLineRouter(handler)

		rec := doRequest(r, "DELETE", "/item-lines/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
