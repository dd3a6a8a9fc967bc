package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// documentService handles project document metadata. File bytes live in
// external storage; this service only issues and tracks storage keys.
type documentService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewDocumentService creates a new DocumentServicer.
func NewDocumentService(db *gorm.DB, projectService ProjectServicer) DocumentServicer {
	return &documentService{db: db, projectService: projectService}
}

// CreateDocument registers document metadata and issues an opaque storage key.
func (s *documentService) CreateDocument(userID, projectID uint, name, contentType string, size int64) (*models.Document, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "document name is required")
	}
	if size < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "size cannot be negative")
	}

	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	document := &models.Document{
		ProjectID:    projectID,
		UploadedByID: userID,
		Name:         name,
		StorageKey:   uuid.New().String(),
		ContentType:  contentType,
		Size:         size,
	}

	if err := s.db.Create(document).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return document, nil
}

// GetProjectDocuments retrieves a paginated list of documents for a project.
func (s *documentService) GetProjectDocuments(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Document], error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Document{}).Where("project_id = ?", projectID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var documents []models.Document
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at DESC").Find(&documents).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(documents, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDocumentByID retrieves a document owned (via its project) by the user.
func (s *documentService) GetDocumentByID(userID, documentID uint) (*models.Document, error) {
	var document models.Document
	err := s.db.
		Joins("JOIN projects ON projects.id = documents.project_id").
		Where("documents.id = ? AND projects.user_id = ?", documentID, userID).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &document, nil
}

// DeleteDocument soft-deletes document metadata. External storage cleanup is
// out of scope.
func (s *documentService) DeleteDocument(userID, documentID uint) error {
	document, err := s.GetDocumentByID(userID, documentID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(document).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
