package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// invoiceService handles outgoing invoices raised against item lines.
type invoiceService struct {
	db              *gorm.DB
	projectService  ProjectServicer
	itemLineService ItemLineServicer
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB, projectService ProjectServicer, itemLineService ItemLineServicer) InvoiceServicer {
	return &invoiceService{db: db, projectService: projectService, itemLineService: itemLineService}
}

// CreateInvoice creates an invoice and adds its amount to the item line's
// invoiced counter in the same database transaction.
func (s *invoiceService) CreateInvoice(userID, projectID, itemLineID uint, number string, amount float64, issueDate time.Time, dueDate *time.Time, notes string) (*models.Invoice, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if number == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invoice number is required")
	}
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}
	line, err := s.itemLineService.GetItemLineByID(userID, itemLineID)
	if err != nil {
		return nil, err
	}
	if line.ProjectID != projectID {
		return nil, apperrors.WithMessage(apperrors.ErrItemLineNotFound, "item line does not belong to this project")
	}

	invoice := &models.Invoice{
		ProjectID:  projectID,
		ItemLineID: itemLineID,
		Number:     number,
		Amount:     amount,
		Status:     models.InvoiceStatusDraft,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Notes:      notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.ItemLine{}).Where("id = ?", itemLineID).
			Update("invoiced", gorm.Expr("invoiced + ?", amount)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetProjectInvoices retrieves a paginated list of invoices for a project.
func (s *invoiceService) GetProjectInvoices(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Invoice{}).Where("project_id = ?", projectID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var invoices []models.Invoice
	if err := base.Scopes(pagination.Paginate(page)).Order("issue_date DESC").Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(invoices, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvoiceByID retrieves an invoice owned (via its project) by the user.
func (s *invoiceService) GetInvoiceByID(userID, invoiceID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.
		Joins("JOIN projects ON projects.id = invoices.project_id").
		Where("invoices.id = ? AND projects.user_id = ?", invoiceID, userID).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &invoice, nil
}

// validInvoiceTransitions lists the allowed status moves.
var validInvoiceTransitions = map[models.InvoiceStatus][]models.InvoiceStatus{
	models.InvoiceStatusDraft: {models.InvoiceStatusSent, models.InvoiceStatusCancelled},
	models.InvoiceStatusSent:  {models.InvoiceStatusPaid, models.InvoiceStatusCancelled},
}

// UpdateInvoiceStatus moves an invoice along its lifecycle. Cancelling
// reverses the item line's invoiced counter in the same transaction.
func (s *invoiceService) UpdateInvoiceStatus(userID, invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error) {
	invoice, err := s.GetInvoiceByID(userID, invoiceID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range validInvoiceTransitions[invoice.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.ErrInvalidStatusChange
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(invoice).Update("status", status).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if status == models.InvoiceStatusCancelled {
			if err := tx.Model(&models.ItemLine{}).Where("id = ?", invoice.ItemLineID).
				Update("invoiced", gorm.Expr("invoiced - ?", invoice.Amount)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}
