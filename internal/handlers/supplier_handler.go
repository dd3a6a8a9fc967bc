package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/pagination"
	"leton/internal/services"
)

// SupplierHandler handles supplier-related requests.
type SupplierHandler struct {
	supplierService services.SupplierServicer
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierService services.SupplierServicer) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// SupplierRequest represents the request payload for creating or updating a supplier.
type SupplierRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Trade   string `json:"trade" binding:"max=100"`
	Email   string `json:"email" binding:"omitempty,email,max=255"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
}

// CreateSupplier handles the creation of a new supplier.
// @Summary     Create a supplier
// @Description Create a new supplier for the authenticated user
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SupplierRequest true "Supplier details"
// @Success     201 {object} models.Supplier "Supplier created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	supplier, err := h.supplierService.CreateSupplier(userID, req.Name, req.Trade, req.Email, req.Phone, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"supplier": supplier})
}

// GetSuppliers handles listing suppliers for the authenticated user.
// @Summary     Get suppliers
// @Tags        suppliers
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Supplier] "Paginated suppliers"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /suppliers [get]
func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.supplierService.GetUserSuppliers(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSupplier handles retrieving a specific supplier.
// @Summary     Get supplier by ID
// @Tags        suppliers
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Supplier ID"
// @Success     200 {object} models.Supplier "Supplier details"
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplierID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(userID, supplierID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// UpdateSupplier handles updating an existing supplier.
// @Summary     Update supplier
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Supplier ID"
// @Param       request body SupplierRequest true "Updated supplier details"
// @Success     200 {object} models.Supplier "Updated supplier"
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplierID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(userID, supplierID, req.Name, req.Trade, req.Email, req.Phone, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// DeleteSupplier handles deleting a supplier.
// @Summary     Delete supplier
// @Tags        suppliers
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Supplier ID"
// @Success     200 {object} MessageResponse "Supplier deleted"
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplierID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.supplierService.DeleteSupplier(userID, supplierID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}
