package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/pagination"
	"leton/internal/services"
)

// ContactHandler handles client contact requests.
type ContactHandler struct {
	contactService services.ContactServicer
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService services.ContactServicer) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents the request payload for creating or updating a contact.
type ContactRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Role  string `json:"role" binding:"max=100"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
	Phone string `json:"phone" binding:"max=50"`
}

// CreateContact handles adding a contact to a client.
// @Summary     Create a contact
// @Description Add a contact person to one of the user's clients
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "Client ID"
// @Param       request body ContactRequest true "Contact details"
// @Success     201 {object} models.Contact "Contact created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clients/{id}/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contact, err := h.contactService.CreateContact(userID, clientID, req.Name, req.Role, req.Email, req.Phone)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contact": contact})
}

// GetContacts handles listing contacts of a client.
// @Summary     Get client contacts
// @Description Get a paginated list of contacts for a client
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Client ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Contact] "Paginated contacts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clients/{id}/contacts [get]
func (h *ContactHandler) GetContacts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.contactService.GetClientContacts(userID, clientID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetContact handles retrieving a specific contact.
// @Summary     Get contact by ID
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Contact ID"
// @Success     200 {object} models.Contact "Contact details"
// @Failure     404 {object} ErrorResponse "Contact not found"
// @Router      /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contactID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	contact, err := h.contactService.GetContactByID(userID, contactID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// UpdateContact handles updating an existing contact.
// @Summary     Update contact
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "Contact ID"
// @Param       request body ContactRequest true "Updated contact details"
// @Success     200 {object} models.Contact "Updated contact"
// @Failure     404 {object} ErrorResponse "Contact not found"
// @Router      /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contactID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contact, err := h.contactService.UpdateContact(userID, contactID, req.Name, req.Role, req.Email, req.Phone)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// DeleteContact handles deleting a contact.
// @Summary     Delete contact
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Contact ID"
// @Success     200 {object} MessageResponse "Contact deleted"
// @Failure     404 {object} ErrorResponse "Contact not found"
// @Router      /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contactID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.contactService.DeleteContact(userID, contactID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
