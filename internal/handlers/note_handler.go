package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/pagination"
	"leton/internal/services"
)

// NoteHandler handles project note requests.
type NoteHandler struct {
	noteService services.NoteServicer
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService services.NoteServicer) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// CreateNoteRequest represents the request payload for creating a note.
type CreateNoteRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=300"`
	Body   string `json:"body" binding:"max=10000"`
	Pinned bool   `json:"pinned"`
}

// UpdateNoteRequest represents the request payload for updating a note.
type UpdateNoteRequest struct {
	Title  string `json:"title" binding:"omitempty,min=1,max=300"`
	Body   string `json:"body" binding:"max=10000"`
	Pinned *bool  `json:"pinned"`
}

// CreateNote handles creating a project note.
// @Summary     Create a note
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Project ID"
// @Param       request body CreateNoteRequest true "Note details"
// @Success     201 {object} models.Note "Note created"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
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

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.CreateNote(userID, projectID, req.Title, req.Body, req.Pinned)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// GetNotes handles listing notes of a project, pinned first.
// @Summary     Get project notes
// @Tags        notes
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Project ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Note] "Paginated notes"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/notes [get]
func (h *NoteHandler) GetNotes(c *gin.Context) {
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

	result, err := h.noteService.GetProjectNotes(userID, projectID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetNote handles retrieving a specific note.
// @Summary     Get note by ID
// @Tags        notes
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Note ID"
// @Success     200 {object} models.Note "Note details"
// @Failure     404 {object} ErrorResponse "Note not found"
// @Router      /notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	note, err := h.noteService.GetNoteByID(userID, noteID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// UpdateNote handles updating an existing note.
// @Summary     Update note
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Note ID"
// @Param       request body UpdateNoteRequest true "Updated note details"
// @Success     200 {object} models.Note "Updated note"
// @Failure     404 {object} ErrorResponse "Note not found"
// @Router      /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.UpdateNote(userID, noteID, req.Title, req.Body, req.Pinned)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// DeleteNote handles deleting a note.
// @Summary     Delete note
// @Tags        notes
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Note ID"
// @Success     200 {object} MessageResponse "Note deleted"
// @Failure     404 {object} ErrorResponse "Note not found"
// @Router      /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.noteService.DeleteNote(userID, noteID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
