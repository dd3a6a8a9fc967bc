package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// contactService handles client contact management. Ownership is checked
// through the parent client.
type contactService struct {
	db            *gorm.DB
	clientService ClientServicer
}

// NewContactService creates a new ContactServicer.
func NewContactService(db *gorm.DB, clientService ClientServicer) ContactServicer {
	return &contactService{db: db, clientService: clientService}
}

// CreateContact creates a contact under one of the user's clients.
func (s *contactService) CreateContact(userID, clientID uint, name, role, email, phone string) (*models.Contact, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contact name is required")
	}

	if _, err := s.clientService.GetClientByID(userID, clientID); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		ClientID: clientID,
		Name:     name,
		Role:     role,
		Email:    email,
		Phone:    phone,
	}

	if err := s.db.Create(contact).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return contact, nil
}

// GetClientContacts retrieves a paginated list of contacts for a client.
func (s *contactService) GetClientContacts(userID, clientID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Contact], error) {
	if _, err := s.clientService.GetClientByID(userID, clientID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Contact{}).Where("client_id = ?", clientID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var contacts []models.Contact
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&contacts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(contacts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetContactByID retrieves a contact owned (via its client) by the user.
func (s *contactService) GetContactByID(userID, contactID uint) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.
		Joins("JOIN clients ON clients.id = contacts.client_id").
		Where("contacts.id = ? AND clients.user_id = ?", contactID, userID).
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &contact, nil
}

// UpdateContact updates an existing contact.
func (s *contactService) UpdateContact(userID, contactID uint, name, role, email, phone string) (*models.Contact, error) {
	contact, err := s.GetContactByID(userID, contactID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if role != "" {
		updates["role"] = role
	}
	if email != "" {
		updates["email"] = email
	}
	if phone != "" {
		updates["phone"] = phone
	}

	if len(updates) > 0 {
		if err := s.db.Model(contact).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return contact, nil
}

// DeleteContact soft-deletes a contact.
func (s *contactService) DeleteContact(userID, contactID uint) error {
	contact, err := s.GetContactByID(userID, contactID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(contact).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
