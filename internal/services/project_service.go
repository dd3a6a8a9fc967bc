package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// projectService handles project-related business logic.
type projectService struct {
	db            *gorm.DB
	clientService ClientServicer
}

// NewProjectService creates a new ProjectServicer.
func NewProjectService(db *gorm.DB, clientService ClientServicer) ProjectServicer {
	return &projectService{db: db, clientService: clientService}
}

// CreateProject creates a new project under one of the user's clients.
func (s *projectService) CreateProject(userID, clientID uint, name, reference, address, currency string, startDate, endDate *time.Time) (*models.Project, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperrors.ErrEndBeforeStart
	}

	// The client must exist and belong to the user.
	if _, err := s.clientService.GetClientByID(userID, clientID); err != nil {
		return nil, err
	}

	if currency == "" {
		currency = "USD"
	}

	project := &models.Project{
		UserID:    userID,
		ClientID:  clientID,
		Name:      name,
		Reference: reference,
		Address:   address,
		Status:    models.ProjectStatusPlanned,
		Currency:  currency,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := s.db.Create(project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return project, nil
}

// GetUserProjects retrieves a paginated list of projects, optionally filtered by status.
func (s *projectService) GetUserProjects(userID uint, page pagination.PageRequest, status *models.ProjectStatus) (*pagination.PageResponse[models.Project], error) {
	page.Defaults()

	base := s.db.Model(&models.Project{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var projects []models.Project
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(projects, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetProjectByID retrieves a project by ID for a specific user.
func (s *projectService) GetProjectByID(userID, projectID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &project, nil
}

// UpdateProject updates an existing project.
func (s *projectService) UpdateProject(userID, projectID uint, name, reference, address string, status *models.ProjectStatus, startDate, endDate *time.Time) (*models.Project, error) {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	start := project.StartDate
	if startDate != nil {
		start = startDate
	}
	end := project.EndDate
	if endDate != nil {
		end = endDate
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, apperrors.ErrEndBeforeStart
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if reference != "" {
		updates["reference"] = reference
	}
	if address != "" {
		updates["address"] = address
	}
	if status != nil {
		updates["status"] = *status
	}
	if startDate != nil {
		updates["start_date"] = startDate
	}
	if endDate != nil {
		updates["end_date"] = endDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(project).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return project, nil
}

// DeleteProject soft-deletes a project.
func (s *projectService) DeleteProject(userID, projectID uint) error {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(project).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
