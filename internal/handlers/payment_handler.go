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

// PaymentHandler handles payment-related requests.
type PaymentHandler struct {
	paymentService services.PaymentServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService services.PaymentServicer) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPaymentRequest represents the request payload for recording a payment.
type RecordPaymentRequest struct {
	ItemLineID  uint                    `json:"item_line_id" binding:"required"`
	InvoiceID   *uint                   `json:"invoice_id"`
	BillID      *uint                   `json:"bill_id"`
	Direction   models.PaymentDirection `json:"direction" binding:"required,payment_direction"`
	Amount      float64                 `json:"amount" binding:"required,gt=0"`
	PaymentDate time.Time               `json:"payment_date"`
	Method      string                  `json:"method" binding:"max=50"`
	Reference   string                  `json:"reference" binding:"max=200"`
}

// RecordPayment handles recording an incoming or outgoing payment.
// @Summary     Record a payment
// @Description Record a payment against an item line. Incoming payments feed
// @Description the paid counter, outgoing payments the payments counter, in
// @Description the same transaction. Linking an invoice or bill settles it
// @Description once its payments cover the amount.
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Project ID"
// @Param       request body RecordPaymentRequest true "Payment details"
// @Success     201 {object} models.Payment "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project, item line, invoice, or bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
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

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payment, err := h.paymentService.RecordPayment(
		userID, projectID, req.ItemLineID, req.InvoiceID, req.BillID,
		req.Direction, req.Amount, req.PaymentDate, req.Method, req.Reference,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GetPayments handles listing payments of a project.
// @Summary     Get project payments
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Project ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Payment] "Paginated payments"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/payments [get]
func (h *PaymentHandler) GetPayments(c *gin.Context) {
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

	result, err := h.paymentService.GetProjectPayments(userID, projectID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPayment handles retrieving a specific payment.
// @Summary     Get payment by ID
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment ID"
// @Success     200 {object} models.Payment "Payment details"
// @Failure     404 {object} ErrorResponse "Payment not found"
// @Router      /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paymentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.paymentService.GetPaymentByID(userID, paymentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}
