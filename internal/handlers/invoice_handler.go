package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
	"leton/internal/services"
)

// InvoiceHandler handles invoice-related requests.
type InvoiceHandler struct {
	invoiceService services.InvoiceServicer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService services.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// CreateInvoiceRequest represents the request payload for creating an invoice.
type CreateInvoiceRequest struct {
	ItemLineID uint       `json:"item_line_id" binding:"required"`
	Number     string     `json:"number" binding:"required,min=1,max=100"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	IssueDate  time.Time  `json:"issue_date"`
	DueDate    *time.Time `json:"due_date"`
	Notes      string     `json:"notes" binding:"max=2000"`
}

// UpdateInvoiceStatusRequest represents a status transition request.
type UpdateInvoiceStatusRequest struct {
	Status models.InvoiceStatus `json:"status" binding:"required,invoice_status"`
}

// CreateInvoice handles raising an invoice against an item line.
// @Summary     Create an invoice
// @Description Raise an invoice against an item line. The invoiced amount is
// @Description added to the item line's counter in the same transaction.
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Project ID"
// @Param       request body CreateInvoiceRequest true "Invoice details"
// @Success     201 {object} models.Invoice "Invoice created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project or item line not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(
		userID, projectID, req.ItemLineID, req.Number, req.Amount, req.IssueDate, req.DueDate, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// GetInvoices handles listing invoices of a project.
// @Summary     Get project invoices
// @Tags        invoices
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Project ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Invoice] "Paginated invoices"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/invoices [get]
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.invoiceService.GetProjectInvoices(userID, projectID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInvoice handles retrieving a specific invoice.
// @Summary     Get invoice by ID
// @Tags        invoices
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Invoice ID"
// @Success     200 {object} models.Invoice "Invoice details"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Router      /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(userID, invoiceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// UpdateInvoiceStatus handles moving an invoice along its lifecycle.
// @Summary     Update invoice status
// @Description Move an invoice along draft -> sent -> paid. Cancelling
// @Description reverses the item line's invoiced counter.
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                        true "Invoice ID"
// @Param       request body UpdateInvoiceStatusRequest true "New status"
// @Success     200 {object} models.Invoice "Updated invoice"
// @Failure     400 {object} ErrorResponse "Unsupported status transition"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /invoices/{id}/status [put]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(userID, invoiceID, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}
