package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/models"
	"leton/internal/pagination"
)

// billService handles incoming supplier bills charged to item lines.
type billService struct {
	db              *gorm.DB
	projectService  ProjectServicer
	itemLineService ItemLineServicer
	supplierService SupplierServicer
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB, projectService ProjectServicer, itemLineService ItemLineServicer, supplierService SupplierServicer) BillServicer {
	return &billService{db: db, projectService: projectService, itemLineService: itemLineService, supplierService: supplierService}
}

// CreateBill creates a bill and adds its amount to the item line's billed
// counter in the same database transaction.
func (s *billService) CreateBill(userID, projectID, itemLineID uint, supplierID *uint, number string, amount float64, issueDate time.Time, dueDate *time.Time, notes string) (*models.Bill, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if number == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill number is required")
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
	if supplierID != nil {
		if _, err := s.supplierService.GetSupplierByID(userID, *supplierID); err != nil {
			return nil, err
		}
	}

	bill := &models.Bill{
		ProjectID:  projectID,
		ItemLineID: itemLineID,
		SupplierID: supplierID,
		Number:     number,
		Amount:     amount,
		Status:     models.BillStatusReceived,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Notes:      notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.ItemLine{}).Where("id = ?", itemLineID).
			Update("billed", gorm.Expr("billed + ?", amount)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// GetProjectBills retrieves a paginated list of bills for a project.
func (s *billService) GetProjectBills(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Bill], error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Bill{}).Where("project_id = ?", projectID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []models.Bill
	if err := base.Scopes(pagination.Paginate(page)).Order("issue_date DESC").Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(bills, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBillByID retrieves a bill owned (via its project) by the user.
func (s *billService) GetBillByID(userID, billID uint) (*models.Bill, error) {
	var bill models.Bill
	err := s.db.
		Joins("JOIN projects ON projects.id = bills.project_id").
		Where("bills.id = ? AND projects.user_id = ?", billID, userID).
		First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// validBillTransitions lists the allowed status moves.
var validBillTransitions = map[models.BillStatus][]models.BillStatus{
	models.BillStatusReceived: {models.BillStatusApproved, models.BillStatusDisputed},
	models.BillStatusApproved: {models.BillStatusPaid, models.BillStatusDisputed},
	models.BillStatusDisputed: {models.BillStatusReceived},
}

// UpdateBillStatus moves a bill along its lifecycle. Disputing a bill
// reverses the item line's billed counter; resolving the dispute restores it.
func (s *billService) UpdateBillStatus(userID, billID uint, status models.BillStatus) (*models.Bill, error) {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range validBillTransitions[bill.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.ErrInvalidStatusChange
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(bill).Update("status", status).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		switch {
		case status == models.BillStatusDisputed:
			if err := tx.Model(&models.ItemLine{}).Where("id = ?", bill.ItemLineID).
				Update("billed", gorm.Expr("billed - ?", bill.Amount)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case status == models.BillStatusReceived:
			if err := tx.Model(&models.ItemLine{}).Where("id = ?", bill.ItemLineID).
				Update("billed", gorm.Expr("billed + ?", bill.Amount)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}
