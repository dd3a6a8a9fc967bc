package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/pagination"
	"leton/internal/services"
)

// DocumentHandler handles project document metadata requests.
type DocumentHandler struct {
	documentService services.DocumentServicer
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService services.DocumentServicer) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// CreateDocumentRequest represents the request payload for registering a document.
type CreateDocumentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=300"`
	ContentType string `json:"content_type" binding:"max=100"`
	Size        int64  `json:"size" binding:"min=0"`
}

// CreateDocument handles registering document metadata.
// @Summary     Register a document
// @Description Register document metadata on a project and receive an opaque
// @Description storage key. File bytes live in external storage.
// @Tags        documents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Project ID"
// @Param       request body CreateDocumentRequest true "Document metadata"
// @Success     201 {object} models.Document "Document registered"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
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

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	document, err := h.documentService.CreateDocument(userID, projectID, req.Name, req.ContentType, req.Size)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"document": document})
}

// GetDocuments handles listing documents of a project.
// @Summary     Get project documents
// @Tags        documents
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Project ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Document] "Paginated documents"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/documents [get]
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
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

	result, err := h.documentService.GetProjectDocuments(userID, projectID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDocument handles retrieving document metadata.
// @Summary     Get document by ID
// @Tags        documents
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Document ID"
// @Success     200 {object} models.Document "Document metadata"
// @Failure     404 {object} ErrorResponse "Document not found"
// @Router      /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	documentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	document, err := h.documentService.GetDocumentByID(userID, documentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": document})
}

// DeleteDocument handles deleting document metadata.
// @Summary     Delete document
// @Tags        documents
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Document ID"
// @Success     200 {object} MessageResponse "Document deleted"
// @Failure     404 {object} ErrorResponse "Document not found"
// @Router      /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	documentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.documentService.DeleteDocument(userID, documentID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
