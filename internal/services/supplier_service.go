package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// supplierService handles supplier management.
type supplierService struct {
	db *gorm.DB
}

// NewSupplierService creates a new SupplierServicer.
func NewSupplierService(db *gorm.DB) SupplierServicer {
	return &supplierService{db: db}
}

// CreateSupplier creates a new supplier for a user.
func (s *supplierService) CreateSupplier(userID uint, name, trade, email, phone, address string) (*models.Supplier, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "supplier name is required")
	}

	supplier := &models.Supplier{
		UserID:  userID,
		Name:    name,
		Trade:   trade,
		Email:   email,
		Phone:   phone,
		Address: address,
	}

	if err := s.db.Create(supplier).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return supplier, nil
}

// GetUserSuppliers retrieves a paginated list of suppliers for a user.
func (s *supplierService) GetUserSuppliers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Supplier], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Supplier{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var suppliers []models.Supplier
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&suppliers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(suppliers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSupplierByID retrieves a supplier by ID for a specific user.
func (s *supplierService) GetSupplierByID(userID, supplierID uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.Where("id = ? AND user_id = ?", supplierID, userID).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &supplier, nil
}

// UpdateSupplier updates an existing supplier.
func (s *supplierService) UpdateSupplier(userID, supplierID uint, name, trade, email, phone, address string) (*models.Supplier, error) {
	supplier, err := s.GetSupplierByID(userID, supplierID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if trade != "" {
		updates["trade"] = trade
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

	if len(updates) > 0 {
		if err := s.db.Model(supplier).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return supplier, nil
}

// DeleteSupplier soft-deletes a supplier. Bills keep their supplier_id
// reference for historical records.
func (s *supplierService) DeleteSupplier(userID, supplierID uint) error {
	supplier, err := s.GetSupplierByID(userID, supplierID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(supplier).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
