package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "leton/internal/errors"
	"leton/internal/finance"
	"leton/internal/models"
	"leton/internal/pagination"
)

// itemLineService handles the project cost/revenue breakdown tree.
type itemLineService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewItemLineService creates a new ItemLineServicer.
func NewItemLineService(db *gorm.DB, projectService ProjectServicer) ItemLineServicer {
	return &itemLineService{db: db, projectService: projectService}
}

// validateInput runs the field-level checks shared by create and update.
func (s *itemLineService) validateInput(in ItemLineInput) error {
	if in.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "item line name is required")
	}
	if in.Quantity < 0 || in.UnitPrice < 0 || in.EstimatedCost < 0 || in.EstimatedRevenue < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts cannot be negative")
	}
	if in.StartDate != nil && in.DueDate != nil && in.DueDate.Before(*in.StartDate) {
		return apperrors.ErrDueBeforeStart
	}
	return nil
}

// loadParent fetches and validates the prospective parent within the project,
// checking the stored level against the parent's actual depth.
func (s *itemLineService) loadParent(projectID uint, in ItemLineInput) (*models.ItemLine, error) {
	if in.ParentID == nil {
		if in.Level != 1 {
			return nil, apperrors.ErrInvalidLevel
		}
		return nil, nil
	}

	var parent models.ItemLine
	if err := s.db.Where("id = ? AND project_id = ?", *in.ParentID, projectID).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if in.Level != parent.Level+1 || in.Level > models.MaxItemLineLevel {
		return nil, apperrors.ErrInvalidLevel
	}
	return &parent, nil
}

// checkContractor enforces the presence rule: a contractor may be omitted
// only when the parent chain already carries one.
func (s *itemLineService) checkContractor(projectID uint, parent *models.ItemLine, in ItemLineInput) error {
	if in.Contractor != "" {
		return nil
	}
	if parent == nil {
		return apperrors.ErrContractorRequired
	}

	var all []models.ItemLine
	if err := s.db.Where("project_id = ?", projectID).Find(&all).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	byID := make(map[uint]*models.ItemLine, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}

	if !finance.ContractorInChain(parent, byID) {
		return apperrors.ErrContractorRequired
	}
	return nil
}

// checkCaps verifies the prospective row against the parent's remaining
// budget using currently persisted siblings. excludeID removes the row being
// edited from the sibling set. Root-level rows have no cap.
func (s *itemLineService) checkCaps(parent *models.ItemLine, excludeID *uint, in ItemLineInput) error {
	if parent == nil {
		return nil
	}

	siblings, err := s.loadSiblings(parent, excludeID)
	if err != nil {
		return err
	}

	caps := finance.ComputeCaps(parent, siblings)
	prospective := models.ItemLine{
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		EstimatedCost: in.EstimatedCost,
	}
	if !caps.AllowsCost(finance.EffectiveCost(&prospective)) {
		return apperrors.ErrCapExceeded
	}
	if !caps.AllowsRevenue(in.EstimatedRevenue) {
		return apperrors.ErrRevenueCapExceeded
	}
	return nil
}

func (s *itemLineService) loadSiblings(parent *models.ItemLine, excludeID *uint) ([]models.ItemLine, error) {
	query := s.db.Where("parent_id = ?", parent.ID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var siblings []models.ItemLine
	if err := query.Find(&siblings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return siblings, nil
}

// CreateItemLine validates the wizard form and inserts a new row in the tree.
// Every check runs before any write; a rejected save mutates nothing.
func (s *itemLineService) CreateItemLine(userID, projectID uint, in ItemLineInput) (*models.ItemLine, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	parent, err := s.loadParent(projectID, in)
	if err != nil {
		return nil, err
	}
	if err := s.checkContractor(projectID, parent, in); err != nil {
		return nil, err
	}
	if err := s.checkCaps(parent, nil, in); err != nil {
		return nil, err
	}

	if in.Status == "" {
		in.Status = models.ItemLineStatusNotStarted
	}

	line := &models.ItemLine{
		ProjectID:        projectID,
		ParentID:         in.ParentID,
		Level:            in.Level,
		Name:             in.Name,
		CostCode:         in.CostCode,
		Contractor:       in.Contractor,
		Unit:             in.Unit,
		Quantity:         in.Quantity,
		UnitPrice:        in.UnitPrice,
		EstimatedCost:    in.EstimatedCost,
		EstimatedRevenue: in.EstimatedRevenue,
		Status:           in.Status,
		StartDate:        in.StartDate,
		DueDate:          in.DueDate,
		DependsOn:        in.DependsOn,
		IsCategory:       in.IsCategory,
		IsCompleted:      in.Status == models.ItemLineStatusCompleted,
	}

	if err := s.db.Create(line).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return line, nil
}

// UpdateItemLine re-validates the full form against the tree, excluding the
// edited row itself from the sibling consumption.
func (s *itemLineService) UpdateItemLine(userID, itemLineID uint, in ItemLineInput) (*models.ItemLine, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	line, err := s.GetItemLineByID(userID, itemLineID)
	if err != nil {
		return nil, err
	}

	if in.ParentID != nil && *in.ParentID == line.ID {
		return nil, apperrors.ErrSelfParent
	}

	// Re-parenting or re-leveling a row with children would orphan their
	// stored levels; reject until the children are moved.
	if !sameParent(line.ParentID, in.ParentID) || in.Level != line.Level {
		var childCount int64
		if err := s.db.Model(&models.ItemLine{}).Where("parent_id = ?", line.ID).Count(&childCount).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if childCount > 0 {
			return nil, apperrors.WithMessage(apperrors.ErrItemHasChildren, "Cannot move an item line that has children")
		}
	}

	parent, err := s.loadParent(line.ProjectID, in)
	if err != nil {
		return nil, err
	}
	if err := s.checkContractor(line.ProjectID, parent, in); err != nil {
		return nil, err
	}
	if err := s.checkCaps(parent, &line.ID, in); err != nil {
		return nil, err
	}

	if in.Status == "" {
		in.Status = line.Status
	}

	updates := map[string]interface{}{
		"parent_id":         in.ParentID,
		"level":             in.Level,
		"name":              in.Name,
		"cost_code":         in.CostCode,
		"contractor":        in.Contractor,
		"unit":              in.Unit,
		"quantity":          in.Quantity,
		"unit_price":        in.UnitPrice,
		"estimated_cost":    in.EstimatedCost,
		"estimated_revenue": in.EstimatedRevenue,
		"status":            in.Status,
		"start_date":        in.StartDate,
		"due_date":          in.DueDate,
		"depends_on":        in.DependsOn,
		"is_category":       in.IsCategory,
		"is_completed":      in.Status == models.ItemLineStatusCompleted,
	}

	if err := s.db.Model(line).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return line, nil
}

func sameParent(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DeleteItemLine soft-deletes a row without children.
func (s *itemLineService) DeleteItemLine(userID, itemLineID uint) error {
	line, err := s.GetItemLineByID(userID, itemLineID)
	if err != nil {
		return err
	}

	var childCount int64
	if err := s.db.Model(&models.ItemLine{}).Where("parent_id = ?", line.ID).Count(&childCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if childCount > 0 {
		return apperrors.ErrItemHasChildren
	}

	if err := s.db.Delete(line).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MarkCompleted sets the completed status and keeps the redundant flag in sync.
func (s *itemLineService) MarkCompleted(userID, itemLineID uint) (*models.ItemLine, error) {
	line, err := s.GetItemLineByID(userID, itemLineID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":       models.ItemLineStatusCompleted,
		"is_completed": true,
	}
	if err := s.db.Model(line).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return line, nil
}

// GetItemLineByID retrieves an item line owned (via its project) by the user.
func (s *itemLineService) GetItemLineByID(userID, itemLineID uint) (*models.ItemLine, error) {
	var line models.ItemLine
	err := s.db.
		Joins("JOIN projects ON projects.id = item_lines.project_id").
		Where("item_lines.id = ? AND projects.user_id = ?", itemLineID, userID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemLineNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &line, nil
}

// GetProjectItemLines retrieves the flat, paginated item list in natural order.
func (s *itemLineService) GetProjectItemLines(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.ItemLine], error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.ItemLine{}).Where("project_id = ?", projectID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var lines []models.ItemLine
	if err := base.Scopes(pagination.Paginate(page)).Order("id").Find(&lines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(lines, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCaps computes the remaining budget under a prospective parent for the
// wizard. A nil parentID means root-level creation: unbounded.
func (s *itemLineService) GetCaps(userID, projectID uint, parentID, excludeID *uint) (*finance.Caps, error) {
	if _, err := s.projectService.GetProjectByID(userID, projectID); err != nil {
		return nil, err
	}

	if parentID == nil {
		caps := finance.ComputeCaps(nil, nil)
		return &caps, nil
	}

	var parent models.ItemLine
	if err := s.db.Where("id = ? AND project_id = ?", *parentID, projectID).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	siblings, err := s.loadSiblings(&parent, excludeID)
	if err != nil {
		return nil, err
	}

	caps := finance.ComputeCaps(&parent, siblings)
	return &caps, nil
}

// RenderTable loads the flat item list and projects it into the multi-view
// hierarchical table: expand/collapse visibility, per-node filters, derived
// monetary cells, display statuses, and formatted amounts in the project
// currency.
func (s *itemLineService) RenderTable(userID, projectID uint, mode finance.ViewMode, settings finance.ViewSettings, expanded finance.ExpandedSet, filter finance.RowFilter) (*TableView, error) {
	if !mode.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown view mode")
	}

	project, err := s.projectService.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	var lines []models.ItemLine
	if err := s.db.Where("project_id = ?", projectID).Order("id").Find(&lines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	formatter := finance.NewFormatter(project.Currency)
	today := time.Now()

	visible := finance.VisibleRows(lines, expanded, filter)
	rows := make([]TableRow, 0, len(visible))
	for _, v := range visible {
		cells := finance.RenderRow(v.Item, mode)
		display := make([]string, len(cells))
		for i, cell := range cells {
			display[i] = formatter.Format(cell.Amount)
		}

		row := TableRow{
			ID:         v.Item.ID,
			ParentID:   v.Item.ParentID,
			Level:      v.Item.Level,
			Depth:      v.Depth,
			Name:       v.Item.Name,
			CostCode:   v.Item.CostCode,
			IsCategory: v.Item.IsCategory,
			Status:     finance.DisplayStatus(v.Item, today),
			Cells:      cells,
			Display:    display,
		}
		if settings.ShowContractor {
			row.Contractor = v.Item.Contractor
		}
		if settings.ShowDates {
			row.StartDate = v.Item.StartDate
			row.DueDate = v.Item.DueDate
		}
		if settings.ShowDependencies {
			row.DependsOn = v.Item.DependsOn
		}

		rows = append(rows, row)
	}

	return &TableView{
		Mode:     mode,
		Settings: settings,
		Currency: project.Currency,
		Columns:  finance.Columns(mode),
		Rows:     rows,
	}, nil
}
