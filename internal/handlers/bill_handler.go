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

// BillHandler handles supplier bill requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBillRequest represents the request payload for recording a bill.
type CreateBillRequest struct {
	ItemLineID uint       `json:"item_line_id" binding:"required"`
	SupplierID *uint      `json:"supplier_id"`
	Number     string     `json:"number" binding:"required,min=1,max=100"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	IssueDate  time.Time  `json:"issue_date"`
	DueDate    *time.Time `json:"due_date"`
	Notes      string     `json:"notes" binding:"max=2000"`
}

// UpdateBillStatusRequest represents a status transition request.
type UpdateBillStatusRequest struct {
	Status models.BillStatus `json:"status" binding:"required,bill_status"`
}

// CreateBill handles recording a supplier bill against an item line.
// @Summary     Create a bill
// @Description Record a supplier bill against an item line. The billed amount
// @Description is added to the item line's counter in the same transaction.
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Project ID"
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} models.Bill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project, item line, or supplier not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
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

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(
		userID, projectID, req.ItemLineID, req.SupplierID, req.Number, req.Amount, req.IssueDate, req.DueDate, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills handles listing bills of a project.
// @Summary     Get project bills
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Project ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Bill] "Paginated bills"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
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

	result, err := h.billService.GetProjectBills(userID, projectID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBill handles retrieving a specific bill.
// @Summary     Get bill by ID
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {object} models.Bill "Bill details"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBillByID(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// UpdateBillStatus handles moving a bill along its lifecycle.
// @Summary     Update bill status
// @Description Move a bill along received -> approved -> paid. Disputing a
// @Description bill reverses the item line's billed counter; resolving the
// @Description dispute restores it.
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "Bill ID"
// @Param       request body UpdateBillStatusRequest true "New status"
// @Success     200 {object} models.Bill "Updated bill"
// @Failure     400 {object} ErrorResponse "Unsupported status transition"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/status [put]
func (h *BillHandler) UpdateBillStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.UpdateBillStatus(userID, billID, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}
