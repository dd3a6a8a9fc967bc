package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// clientService handles client-related business logic.
type clientService struct {
	db *gorm.DB
}

// NewClientService creates a new ClientServicer.
func NewClientService(db *gorm.DB) ClientServicer {
	return &clientService{db: db}
}

// CreateClient creates a new client for a user.
func (s *clientService) CreateClient(userID uint, name, company, email, phone, address, notes string) (*models.Client, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "client name is required")
	}

	client := &models.Client{
		UserID:  userID,
		Name:    name,
		Company: company,
		Email:   email,
		Phone:   phone,
		Address: address,
		Notes:   notes,
	}

	if err := s.db.Create(client).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return client, nil
}

// GetUserClients retrieves a paginated list of clients for a user.
func (s *clientService) GetUserClients(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Client{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var clients []models.Client
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(clients, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetClientByID retrieves a client by ID for a specific user.
func (s *clientService) GetClientByID(userID, clientID uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.Where("id = ? AND user_id = ?", clientID, userID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &client, nil
}

// UpdateClient updates an existing client.
func (s *clientService) UpdateClient(userID, clientID uint, name, company, email, phone, address, notes string) (*models.Client, error) {
	client, err := s.GetClientByID(userID, clientID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if company != "" {
		updates["company"] = company
	}
	if email != "" {
		updates["email"] = email
	}
	if phone != "" {
		updates["phone"] = phone
	}
	if address != "" {
		updates["address"] = address
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(client).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return client, nil
}

// DeleteClient soft-deletes a client. Projects keep their client_id reference
// for historical records.
func (s *clientService) DeleteClient(userID, clientID uint) error {
	client, err := s.GetClientByID(userID, clientID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(client).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
