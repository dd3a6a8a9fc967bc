package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// paymentService records incoming and outgoing payments against item lines.
type paymentService struct {
	db              *gorm.DB
	projectService  ProjectServicer
	itemLineService ItemLineServicer
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(db *gorm.DB, projectService ProjectServicer, itemLineService ItemLineServicer) PaymentServicer {
	return &paymentService{db: db, projectService: projectService, itemLineService: itemLineService}
}

// RecordPayment stores a payment and adjusts the item line's counter in the
// same transaction: incoming payments feed "paid", outgoing feed "payments".
// A linked invoice is marked paid once its incoming payments cover its
// amount; a linked bill is marked paid the same way.
func (s *paymentService) RecordPayment(userID, projectID, itemLineID uint, invoiceID, billID *uint, direction models.PaymentDirection, amount float64, paymentDate time.Time, method, reference string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if direction != models.PaymentIncoming && direction != models.PaymentOutgoing {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "direction must be incoming or outgoing")
	}
	if invoiceID != nil && billID != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a payment settles an invoice or a bill, not both")
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
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

	var invoice *models.Invoice
	if invoiceID != nil {
		if direction != models.PaymentIncoming {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invoice payments must be incoming")
		}
		invoice, err = s.getProjectInvoice(projectID, *invoiceID)
		if err != nil {
			return nil, err
		}
	}

	var bill *models.Bill
	if billID != nil {
		if direction != models.PaymentOutgoing {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill payments must be outgoing")
		}
		bill, err = s.getProjectBill(projectID, *billID)
		if err != nil {
			return nil, err
		}
	}

	payment := &models.Payment{
		ProjectID:   projectID,
		ItemLineID:  itemLineID,
		InvoiceID:   invoiceID,
		BillID:      billID,
		Direction:   direction,
		Amount:      amount,
		PaymentDate: paymentDate,
		Method:      method,
		Reference:   reference,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		counter := "paid"
		if direction == models.PaymentOutgoing {
			counter = "payments"
		}
		if err := tx.Model(&models.ItemLine{}).Where("id = ?", itemLineID).
			Update(counter, gorm.Expr(counter+" + ?", amount)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if invoice != nil {
			if err := s.settleInvoice(tx, invoice); err != nil {
				return err
			}
		}
		if bill != nil {
			if err := s.settleBill(tx, bill); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// settleInvoice marks the invoice paid once its incoming payments cover the amount.
func (s *paymentService) settleInvoice(tx *gorm.DB, invoice *models.Invoice) error {
	var covered float64
	err := tx.Model(&models.Payment{}).
		Where("invoice_id = ? AND direction = ?", invoice.ID, models.PaymentIncoming).
		Select("COALESCE(SUM(amount), 0)").Scan(&covered).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if covered >= invoice.Amount && invoice.Status == models.InvoiceStatusSent {
		if err := tx.Model(invoice).Update("status", models.InvoiceStatusPaid).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// settleBill marks the bill paid once its outgoing payments cover the amount.
func (s *paymentService) settleBill(tx *gorm.DB, bill *models.Bill) error {
	var covered float64
	err := tx.Model(&models.Payment{}).
		Where("bill_id = ? AND direction = ?", bill.ID, models.PaymentOutgoing).
		Select("COALESCE(SUM(amount), 0)").Scan(&covered).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if covered >= bill.Amount && bill.Status == models.BillStatusApproved {
		if err := tx.Model(bill).Update("status", models.BillStatusPaid).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

func (s *paymentService) getProjectInvoice(projectID, invoiceID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Where("id = ? AND project_id = ?", invoiceID, projectID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &invoice, nil
}

func (s *paymentService) getProjectBill(projectID, billID uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Where("id = ? AND project_id = ?", billID, projectID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// GetProjectPayments retrieves a paginated list of payments for a project.
func (s *paymentService) GetProjectPayments(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Payment], error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Payment{}).Where("project_id = ?", projectID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var payments []models.Payment
	if err := base.Scopes(pagination.Paginate(page)).Order("payment_date DESC").Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(payments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPaymentByID retrieves a payment owned (via its project) by the user.
func (s *paymentService) GetPaymentByID(userID, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.
		Joins("JOIN projects ON projects.id = payments.project_id").
		Where("payments.id = ? AND projects.user_id = ?", paymentID, userID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &payment, nil
}
