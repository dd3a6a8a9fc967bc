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

// MeetingHandler handles project meeting requests.
type MeetingHandler struct {
	meetingService services.MeetingServicer
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(meetingService services.MeetingServicer) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

// CreateMeetingRequest represents the request payload for scheduling a meeting.
type CreateMeetingRequest struct {
	Title     string     `json:"title" binding:"required,min=1,max=300"`
	Agenda    string     `json:"agenda" binding:"max=5000"`
	Location  string     `json:"location" binding:"max=300"`
	Attendees string     `json:"attendees" binding:"max=1000"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`
}

// UpdateMeetingRequest represents the request payload for updating a meeting.
type UpdateMeetingRequest struct {
	Title     string                `json:"title" binding:"omitempty,min=1,max=300"`
	Agenda    string                `json:"agenda" binding:"max=5000"`
	Location  string                `json:"location" binding:"max=300"`
	Attendees string                `json:"attendees" binding:"max=1000"`
	Status    *models.MeetingStatus `json:"status" binding:"omitempty,meeting_status"`
	StartTime *time.Time            `json:"start_time"`
	EndTime   *time.Time            `json:"end_time"`
}

// CreateMeeting handles scheduling a project meeting.
// @Summary     Create a meeting
// @Description Schedule a meeting on a project
// @Tags        meetings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Project ID"
// @Param       request body CreateMeetingRequest true "Meeting details"
// @Success     201 {object} models.Meeting "Meeting created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
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

	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	meeting, err := h.meetingService.CreateMeeting(
		userID, projectID, req.Title, req.Agenda, req.Location, req.Attendees, req.StartTime, req.EndTime,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meeting": meeting})
}

// GetMeetings handles listing meetings of a project.
// @Summary     Get project meetings
// @Tags        meetings
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Project ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Meeting] "Paginated meetings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/meetings [get]
func (h *MeetingHandler) GetMeetings(c *gin.Context) {
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

	result, err := h.meetingService.GetProjectMeetings(userID, projectID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMeeting handles retrieving a specific meeting.
// @Summary     Get meeting by ID
// @Tags        meetings
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Meeting ID"
// @Success     200 {object} models.Meeting "Meeting details"
// @Failure     404 {object} ErrorResponse "Meeting not found"
// @Router      /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	meetingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	meeting, err := h.meetingService.GetMeetingByID(userID, meetingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meeting": meeting})
}

// UpdateMeeting handles updating an existing meeting.
// @Summary     Update meeting
// @Tags        meetings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Meeting ID"
// @Param       request body UpdateMeetingRequest true "Updated meeting details"
// @Success     200 {object} models.Meeting "Updated meeting"
// @Failure     404 {object} ErrorResponse "Meeting not found"
// @Router      /meetings/{id} [put]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	meetingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	meeting, err := h.meetingService.UpdateMeeting(
		userID, meetingID, req.Title, req.Agenda, req.Location, req.Attendees, req.Status, req.StartTime, req.EndTime,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meeting": meeting})
}

// DeleteMeeting handles deleting a meeting.
// @Summary     Delete meeting
// @Tags        meetings
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Meeting ID"
// @Success     200 {object} MessageResponse "Meeting deleted"
// @Failure     404 {object} ErrorResponse "Meeting not found"
// @Router      /meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	meetingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.meetingService.DeleteMeeting(userID, meetingID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}
