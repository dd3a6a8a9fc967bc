package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
	"leton/internal/services"
)

// --- mock invoice service ---

type mockInvoiceService struct {
	createInvoiceFn       func(userID, projectID, itemLineID uint, number string, amount float64, issueDate time.Time, dueDate *time.Time, notes string) (*models.Invoice, error)
	getProjectInvoicesFn  func(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error)
	getInvoiceByIDFn      func(userID, invoiceID uint) (*models.Invoice, error)
	updateInvoiceStatusFn func(userID, invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error)
}

func (m *mockInvoiceService) CreateInvoice(userID, projectID, itemLineID uint, number string, amount float64, issueDate time.Time, dueDate *time.Time, notes string) (*models.Invoice, error) {
	if m.createInvoiceFn != nil {
		return m.createInvoiceFn(userID, projectID, itemLineID, number, amount, issueDate, dueDate, notes)
	}
	return &models.Invoice{}, nil
}

func (m *mockInvoiceService) GetProjectInvoices(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error) {
	if m.getProjectInvoicesFn != nil {
		return m.getProjectInvoicesFn(userID, projectID, page)
	}
	resp := pagination.NewPageResponse([]models.Invoice{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockInvoiceService) GetInvoiceByID(userID, invoiceID uint) (*models.Invoice, error) {
	if m.getInvoiceByIDFn != nil {
		return m.getInvoiceByIDFn(userID, invoiceID)
	}
	return &models.Invoice{}, nil
}

func (m *mockInvoiceService) UpdateInvoiceStatus(userID, invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error) {
	if m.updateInvoiceStatusFn != nil {
		return m.updateInvoiceStatusFn(userID, invoiceID, status)
	}
	return &models.Invoice{}, nil
}

var _ services.InvoiceServicer = (*mockInvoiceService)(nil)

func setupInvoiceRouter(handler *InvoiceHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/projects/:id/invoices", handler.CreateInvoice)
	auth.GET("/projects/:id/invoices", handler.GetInvoices)
	auth.GET("/invoices/:id", handler.GetInvoice)
	auth.PUT("/invoices/:id/status", handler.UpdateInvoiceStatus)
	return r
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockInvoiceService{
			createInvoiceFn: func(_, _, itemLineID uint, number string, amount float64, _ time.Time, _ *time.Time, _ string) (*models.Invoice, error) {
				return &models.Invoice{
					Base:       models.Base{ID: 1},
					ItemLineID: itemLineID,
					Number:     number,
					Amount:     amount,
					Status:     models.InvoiceStatusDraft,
				}, nil
			},
		}
		handler := NewInvoiceHandler(svc)
		r := setupInvoiceRouter(handler)

		rec := doRequest(r, "POST", "/projects/1/invoices",
			`{"item_line_id":3,"number":"INV-001","amount":2500}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		invoice := parseJSON(t, rec)["invoice"].(map[string]interface{})
		if invoice["number"] != "INV-001" {
			t.Errorf("expected INV-001, got %v", invoice["number"])
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewInvoiceHandler(&mockInvoiceService{})
		r := setupInvoiceRouter(handler)

		rec := doRequest(r, "POST", "/projects/1/invoices", `{"item_line_id":3,"number":"INV-001","amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestInvoiceHandler_UpdateInvoiceStatus(t *testing.T) {
	t.Run("returns 200 on valid transition", func(t *testing.T) {
		svc := &mockInvoiceService{
			updateInvoiceStatusFn: func(_, invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error) {
				return &models.Invoice{Base: models.Base{ID: invoiceID}, Status: status}, nil
			},
		}
		handler := NewInvoiceHandler(svc)
		r := setupInvoiceRouter(handler)

		rec := doRequest(r, "PUT", "/invoices/1/status", `{"status":"sent"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		invoice := parseJSON(t, rec)["invoice"].(map[string]interface{})
		if invoice["status"] != "sent" {
			t.Errorf("expected sent, got %v", invoice["status"])
		}
	})

	t.Run("returns 400 on unknown status value", func(t *testing.T) {
		handler := NewInvoiceHandler(&mockInvoiceService{})
		r := setupInvoiceRouter(handler)

		rec := doRequest(r, "PUT", "/invoices/1/status", `{"status":"archived"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unsupported transition", func(t *testing.T) {
		svc := &mockInvoiceService{
			updateInvoiceStatusFn: func(_, _ uint, _ models.InvoiceStatus) (*models.Invoice, error) {
				return nil, apperrors.ErrInvalidStatusChange
			},
		}
		handler := NewInvoiceHandler(svc)
		r := setupInvoiceRouter(handler)

		rec := doRequest(r, "PUT", "/invoices/1/status", `{"status":"paid"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_STATUS_CHANGE")
	})
}
