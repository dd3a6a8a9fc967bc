package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "leton/internal/errors"
	"leton/internal/finance"
	"leton/internal/models"
	"leton/internal/pagination"
	"leton/internal/services"
)

// ItemLineHandler handles the project cost/revenue breakdown tree.
type ItemLineHandler struct {
	itemLineService services.ItemLineServicer
}

// NewItemLineHandler creates a new ItemLineHandler.
func NewItemLineHandler(itemLineService services.ItemLineServicer) *ItemLineHandler {
	return &ItemLineHandler{itemLineService: itemLineService}
}

// ItemLineRequest represents the item-line create/edit form.
type ItemLineRequest struct {
	ParentID         *uint                 `json:"parent_id"`
	Level            int                   `json:"level" binding:"required,min=1,max=3"`
	Name             string                `json:"item_line" binding:"required,min=1,max=300"`
	CostCode         string                `json:"cost_code" binding:"max=50"`
	Contractor       string                `json:"contractor" binding:"max=200"`
	Unit             string                `json:"unit" binding:"max=20"`
	Quantity         float64               `json:"quantity" binding:"min=0"`
	UnitPrice        float64               `json:"unit_price" binding:"min=0"`
	EstimatedCost    float64               `json:"estimated_cost" binding:"min=0"`
	EstimatedRevenue float64               `json:"estimated_revenue" binding:"min=0"`
	Status           models.ItemLineStatus `json:"status" binding:"omitempty,item_status"`
	StartDate        *time.Time            `json:"start_date"`
	DueDate          *time.Time            `json:"due_date"`
	DependsOn        *uint                 `json:"depends_on"`
	IsCategory       bool                  `json:"is_category"`
}

func (r ItemLineRequest) toInput() services.ItemLineInput {
	return services.ItemLineInput{
		ParentID:         r.ParentID,
		Level:            r.Level,
		Name:             r.Name,
		CostCode:         r.CostCode,
		Contractor:       r.Contractor,
		Unit:             r.Unit,
		Quantity:         r.Quantity,
		UnitPrice:        r.UnitPrice,
		EstimatedCost:    r.EstimatedCost,
		EstimatedRevenue: r.EstimatedRevenue,
		Status:           r.Status,
		StartDate:        r.StartDate,
		DueDate:          r.DueDate,
		DependsOn:        r.DependsOn,
		IsCategory:       r.IsCategory,
	}
}

// CreateItemLine handles adding a row to the breakdown tree.
// @Summary     Create an item line
// @Description Add a row to the project's cost/revenue breakdown tree. Child
// @Description rows are validated against the parent's remaining budget and
// @Description the contractor presence rule before anything is written.
// @Tags        item-lines
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Project ID"
// @Param       request body ItemLineRequest true "Item line details"
// @Success     201 {object} models.ItemLine "Item line created"
// @Failure     400 {object} ErrorResponse "Invalid input, level mismatch, or cap exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project or parent not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/item-lines [post]
func (h *ItemLineHandler) CreateItemLine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ItemLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	line, err := h.itemLineService.CreateItemLine(userID, projectID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item_line": line})
}

// GetItemLines handles listing the flat item-line list of a project.
// @Summary     Get project item lines
// @Description Get the flat, paginated item-line list of a project in natural order
// @Tags        item-lines
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Project ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ItemLine] "Paginated item lines"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/item-lines [get]
func (h *ItemLineHandler) GetItemLines(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.itemLineService.GetProjectItemLines(userID, projectID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTable handles rendering the multi-view hierarchical table.
// @Summary     Render the financial table
// @Description Render the project's item lines as a hierarchical table under
// @Description one of the four view modes. Collapsed rows hide their subtree;
// @Description the expanded query parameter lists expanded row IDs.
// @Tags        item-lines
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id               path  int    true  "Project ID"
// @Param       view             query string false "View mode (contract-amounts/invoiced-paid/costs-bills/cost-tracking, default cost-tracking)"
// @Param       expanded         query string false "Comma-separated expanded row IDs"
// @Param       search           query string false "Per-row name or cost code filter"
// @Param       status           query string false "Per-row status filter"
// @Param       show_contractor  query bool   false "Include the contractor column"
// @Param       show_dates       query bool   false "Include start and due dates"
// @Param       show_dependencies query bool  false "Include row dependencies"
// @Success     200 {object} services.TableView "Rendered table"
// @Failure     400 {object} ErrorResponse "Invalid view mode or filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/table [get]
func (h *ItemLineHandler) GetTable(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	mode := finance.ViewMode(c.DefaultQuery("view", string(finance.ViewCostTracking)))

	expanded, err := parseExpanded(c.Query("expanded"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := finance.RowFilter{Search: c.Query("search")}
	if v := c.Query("status"); v != "" {
		s := models.ItemLineStatus(v)
		switch s {
		case models.ItemLineStatusNotStarted, models.ItemLineStatusInProgress, models.ItemLineStatusCompleted, models.ItemLineStatusOnHold:
			filter.Status = s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be not-started, in-progress, completed or on-hold"))
			return
		}
	}

	settings := finance.ViewSettings{
		ShowContractor:   c.Query("show_contractor") == "true",
		ShowDates:        c.Query("show_dates") == "true",
		ShowDependencies: c.Query("show_dependencies") == "true",
		ShowChangeOrders: c.Query("show_change_orders") == "true",
	}

	view, err := h.itemLineService.RenderTable(userID, projectID, mode, settings, expanded, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// parseExpanded parses a comma-separated list of expanded row IDs.
func parseExpanded(raw string) (finance.ExpandedSet, error) {
	expanded := finance.ExpandedSet{}
	if raw == "" {
		return expanded, nil
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expanded must be a comma-separated list of row IDs")
		}
		expanded[uint(id)] = true
	}
	return expanded, nil
}

// GetCaps handles the wizard's remaining-budget lookup.
// @Summary     Get remaining budget caps
// @Description Get the remaining cost and revenue budget under a prospective
// @Description parent. Without parent_id the caps are unbounded. exclude_id
// @Description removes the row being edited from the sibling consumption.
// @Tags        item-lines
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path  int true  "Project ID"
// @Param       parent_id  query int false "Prospective parent row ID"
// @Param       exclude_id query int false "Row being edited, excluded from siblings"
// @Success     200 {object} finance.Caps "Remaining budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Project or parent not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id}/caps [get]
func (h *ItemLineHandler) GetCaps(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	parentID, err := parseQueryID(c, "parent_id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	excludeID, err := parseQueryID(c, "exclude_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	caps, err := h.itemLineService.GetCaps(userID, projectID, parentID, excludeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"caps": caps})
}

// parseQueryID parses an optional uint query parameter.
func parseQueryID(c *gin.Context, param string) (*uint, error) {
	v := c.Query(param)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	u := uint(id)
	return &u, nil
}

// GetItemLine handles retrieving a specific item line.
// @Summary     Get item line by ID
// @Tags        item-lines
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item line ID"
// @Success     200 {object} models.ItemLine "Item line details"
// @Failure     404 {object} ErrorResponse "Item line not found"
// @Router      /item-lines/{id} [get]
func (h *ItemLineHandler) GetItemLine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemLineID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	line, err := h.itemLineService.GetItemLineByID(userID, itemLineID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item_line": line})
}

// UpdateItemLine handles updating an existing item line.
// @Summary     Update item line
// @Description Update an item line. The full form is re-validated against the
// @Description tree; the edited row is excluded from its own cap check.
// @Tags        item-lines
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Item line ID"
// @Param       request body ItemLineRequest true "Updated item line details"
// @Success     200 {object} models.ItemLine "Updated item line"
// @Failure     400 {object} ErrorResponse "Invalid input, level mismatch, or cap exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item line not found"
// @Failure     409 {object} ErrorResponse "Item line has children"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /item-lines/{id} [put]
func (h *ItemLineHandler) UpdateItemLine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemLineID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ItemLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	line, err := h.itemLineService.UpdateItemLine(userID, itemLineID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item_line": line})
}

// MarkCompleted handles marking an item line as completed.
// @Summary     Mark item line completed
// @Tags        item-lines
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item line ID"
// @Success     200 {object} models.ItemLine "Completed item line"
// @Failure     404 {object} ErrorResponse "Item line not found"
// @Router      /item-lines/{id}/complete [post]
func (h *ItemLineHandler) MarkCompleted(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemLineID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	line, err := h.itemLineService.MarkCompleted(userID, itemLineID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item_line": line})
}

// DeleteItemLine handles deleting an item line.
// @Summary     Delete item line
// @Description Delete an item line without children (soft delete)
// @Tags        item-lines
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item line ID"
// @Success     200 {object} MessageResponse "Item line deleted"
// @Failure     404 {object} ErrorResponse "Item line not found"
// @Failure     409 {object} ErrorResponse "Item line has children"
// @Router      /item-lines/{id} [delete]
func (h *ItemLineHandler) DeleteItemLine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemLineID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.itemLineService.DeleteItemLine(userID, itemLineID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item line deleted successfully"})
}
