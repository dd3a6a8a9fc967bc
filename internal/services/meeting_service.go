package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// meetingService handles project meeting scheduling.
type meetingService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewMeetingService creates a new MeetingServicer.
func NewMeetingService(db *gorm.DB, projectService ProjectServicer) MeetingServicer {
	return &meetingService{db: db, projectService: projectService}
}

// CreateMeeting schedules a meeting for a project.
func (s *meetingService) CreateMeeting(userID, projectID uint, title, agenda, location, attendees string, startTime time.Time, endTime *time.Time) (*models.Meeting, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "meeting title is required")
	}
	if startTime.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start time is required")
	}
	if endTime != nil && endTime.Before(startTime) {
		return nil, apperrors.ErrEndBeforeStart
	}

	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		ProjectID: projectID,
		Title:     title,
		Agenda:    agenda,
		Location:  location,
		Attendees: attendees,
		Status:    models.MeetingStatusScheduled,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if err := s.db.Create(meeting).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return meeting, nil
}

// GetProjectMeetings retrieves a paginated list of meetings for a project.
func (s *meetingService) GetProjectMeetings(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Meeting], error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Meeting{}).Where("project_id = ?", projectID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var meetings []models.Meeting
	if err := base.Scopes(pagination.Paginate(page)).Order("start_time DESC").Find(&meetings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(meetings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetMeetingByID retrieves a meeting owned (via its project) by the user.
func (s *meetingService) GetMeetingByID(userID, meetingID uint) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.db.
		Joins("JOIN projects ON projects.id = meetings.project_id").
		Where("meetings.id = ? AND projects.user_id = ?", meetingID, userID).
		First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &meeting, nil
}

// UpdateMeeting updates an existing meeting.
func (s *meetingService) UpdateMeeting(userID, meetingID uint, title, agenda, location, attendees string, status *models.MeetingStatus, startTime, endTime *time.Time) (*models.Meeting, error) {
	meeting, err := s.GetMeetingByID(userID, meetingID)
	if err != nil {
		return nil, err
	}

	start := meeting.StartTime
	if startTime != nil {
		start = *startTime
	}
	end := meeting.EndTime
	if endTime != nil {
		end = endTime
	}
	if end != nil && end.Before(start) {
		return nil, apperrors.ErrEndBeforeStart
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if agenda != "" {
		updates["agenda"] = agenda
	}
	if location != "" {
		updates["location"] = location
	}
	if attendees != "" {
		updates["attendees"] = attendees
	}
	if status != nil {
		updates["status"] = *status
	}
	if startTime != nil {
		updates["start_time"] = *startTime
	}
	if endTime != nil {
		updates["end_time"] = endTime
	}

	if len(updates) > 0 {
		if err := s.db.Model(meeting).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return meeting, nil
}

// DeleteMeeting soft-deletes a meeting.
func (s *meetingService) DeleteMeeting(userID, meetingID uint) error {
	meeting, err := s.GetMeetingByID(userID, meetingID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(meeting).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
