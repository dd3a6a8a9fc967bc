package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// noteService handles free-form project notes.
type noteService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewNoteService creates a new NoteServicer.
func NewNoteService(db *gorm.DB, projectService ProjectServicer) NoteServicer {
	return &noteService{db: db, projectService: projectService}
}

// CreateNote creates a note on a project.
func (s *noteService) CreateNote(userID, projectID uint, title, body string, pinned bool) (*models.Note, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note title is required")
	}

	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	note := &models.Note{
		ProjectID: projectID,
		Title:     title,
		Body:      body,
		Pinned:    pinned,
	}

	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

// GetProjectNotes retrieves a paginated list of notes, pinned first.
func (s *noteService) GetProjectNotes(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Note], error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Note{}).Where("project_id = ?", projectID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var notes []models.Note
	if err := base.Scopes(pagination.Paginate(page)).Order("pinned DESC, created_at DESC").Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(notes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetNoteByID retrieves a note owned (via its project) by the user.
func (s *noteService) GetNoteByID(userID, noteID uint) (*models.Note, error) {
	var note models.Note
	err := s.db.
		Joins("JOIN projects ON projects.id = notes.project_id").
		Where("notes.id = ? AND projects.user_id = ?", noteID, userID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &note, nil
}

// UpdateNote updates an existing note.
func (s *noteService) UpdateNote(userID, noteID uint, title, body string, pinned *bool) (*models.Note, error) {
	note, err := s.GetNoteByID(userID, noteID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if body != "" {
		updates["body"] = body
	}
	if pinned != nil {
		updates["pinned"] = *pinned
	}

	if len(updates) > 0 {
		if err := s.db.Model(note).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return note, nil
}

// DeleteNote soft-deletes a note.
func (s *noteService) DeleteNote(userID, noteID uint) error {
	note, err := s.GetNoteByID(userID, noteID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(note).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
