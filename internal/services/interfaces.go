package services

import (
	"time"

	"leton/internal/finance"
	"leton/internal/models"
	"leton/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ClientServicer defines the contract for client-related business logic.
type ClientServicer interface {
	CreateClient(userID uint, name, company, email, phone, address, notes string) (*models.Client, error)
	GetUserClients(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error)
	GetClientByID(userID, clientID uint) (*models.Client, error)
	UpdateClient(userID, clientID uint, name, company, email, phone, address, notes string) (*models.Client, error)
	DeleteClient(userID, clientID uint) error
}

// ContactServicer defines the contract for client contact management.
type ContactServicer interface {
	CreateContact(userID, clientID uint, name, role, email, phone string) (*models.Contact, error)
	GetClientContacts(userID, clientID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Contact], error)
	GetContactByID(userID, contactID uint) (*models.Contact, error)
	UpdateContact(userID, contactID uint, name, role, email, phone string) (*models.Contact, error)
	DeleteContact(userID, contactID uint) error
}

// SupplierServicer defines the contract for supplier management.
type SupplierServicer interface {
	CreateSupplier(userID uint, name, trade, email, phone, address string) (*models.Supplier, error)
	GetUserSuppliers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Supplier], error)
	GetSupplierByID(userID, supplierID uint) (*models.Supplier, error)
	UpdateSupplier(userID, supplierID uint, name, trade, email, phone, address string) (*models.Supplier, error)
	DeleteSupplier(userID, supplierID uint) error
}

// ProjectServicer defines the contract for project-related business logic.
type ProjectServicer interface {
	CreateProject(userID, clientID uint, name, reference, address, currency string, startDate, endDate *time.Time) (*models.Project, error)
	GetUserProjects(userID uint, page pagination.PageRequest, status *models.ProjectStatus) (*pagination.PageResponse[models.Project], error)
	GetProjectByID(userID, projectID uint) (*models.Project, error)
	UpdateProject(userID, projectID uint, name, reference, address string, status *models.ProjectStatus, startDate, endDate *time.Time) (*models.Project, error)
	DeleteProject(userID, projectID uint) error
}

// ItemLineInput carries the form fields of the item-line create/edit wizard.
type ItemLineInput struct {
	ParentID         *uint
	Level            int
	Name             string
	CostCode         string
	Contractor       string
	Unit             string
	Quantity         float64
	UnitPrice        float64
	EstimatedCost    float64
	EstimatedRevenue float64
	Status           models.ItemLineStatus
	StartDate        *time.Time
	DueDate          *time.Time
	DependsOn        *uint
	IsCategory       bool
}

// TableRow is one visible row of the rendered hierarchical table.
type TableRow struct {
	ID         uint                `json:"id"`
	ParentID   *uint               `json:"parent_id,omitempty"`
	Level      int                 `json:"level"`
	Depth      int                 `json:"depth"`
	Name       string              `json:"item_line"`
	CostCode   string              `json:"cost_code,omitempty"`
	Contractor string              `json:"contractor,omitempty"`
	IsCategory bool                `json:"is_category"`
	Status     finance.StatusLabel `json:"status"`
	StartDate  *time.Time          `json:"start_date,omitempty"`
	DueDate    *time.Time          `json:"due_date,omitempty"`
	DependsOn  *uint               `json:"depends_on,omitempty"`
	Cells      []finance.Cell      `json:"cells"`
	Display    []string            `json:"display"`
}

// TableView is the rendered multi-view hierarchical table of a project.
type TableView struct {
	Mode     finance.ViewMode     `json:"view_mode"`
	Settings finance.ViewSettings `json:"settings"`
	Currency string               `json:"currency"`
	Columns  []finance.Column     `json:"columns"`
	Rows     []TableRow           `json:"rows"`
}

// ItemLineServicer defines the contract for the cost/revenue breakdown tree.
type ItemLineServicer interface {
	CreateItemLine(userID, projectID uint, in ItemLineInput) (*models.ItemLine, error)
	UpdateItemLine(userID, itemLineID uint, in ItemLineInput) (*models.ItemLine, error)
	DeleteItemLine(userID, itemLineID uint) error
	MarkCompleted(userID, itemLineID uint) (*models.ItemLine, error)
	GetItemLineByID(userID, itemLineID uint) (*models.ItemLine, error)
	GetProjectItemLines(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.ItemLine], error)
	GetCaps(userID, projectID uint, parentID, excludeID *uint) (*finance.Caps, error)
	RenderTable(userID, projectID uint, mode finance.ViewMode, settings finance.ViewSettings, expanded finance.ExpandedSet, filter finance.RowFilter) (*TableView, error)
}

// InvoiceServicer defines the contract for outgoing invoices.
type InvoiceServicer interface {
	CreateInvoice(userID, projectID, itemLineID uint, number string, amount float64, issueDate time.Time, dueDate *time.Time, notes string) (*models.Invoice, error)
	GetProjectInvoices(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error)
	GetInvoiceByID(userID, invoiceID uint) (*models.Invoice, error)
	UpdateInvoiceStatus(userID, invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error)
}

// BillServicer defines the contract for incoming supplier bills.
type BillServicer interface {
	CreateBill(userID, projectID, itemLineID uint, supplierID *uint, number string, amount float64, issueDate time.Time, dueDate *time.Time, notes string) (*models.Bill, error)
	GetProjectBills(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Bill], error)
	GetBillByID(userID, billID uint) (*models.Bill, error)
	UpdateBillStatus(userID, billID uint, status models.BillStatus) (*models.Bill, error)
}

// PaymentServicer defines the contract for recording payments.
type PaymentServicer interface {
	RecordPayment(userID, projectID, itemLineID uint, invoiceID, billID *uint, direction models.PaymentDirection, amount float64, paymentDate time.Time, method, reference string) (*models.Payment, error)
	GetProjectPayments(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Payment], error)
	GetPaymentByID(userID, paymentID uint) (*models.Payment, error)
}

// MeetingServicer defines the contract for project meetings.
type MeetingServicer interface {
	CreateMeeting(userID, projectID uint, title, agenda, location, attendees string, startTime time.Time, endTime *time.Time) (*models.Meeting, error)
	GetProjectMeetings(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Meeting], error)
	GetMeetingByID(userID, meetingID uint) (*models.Meeting, error)
	UpdateMeeting(userID, meetingID uint, title, agenda, location, attendees string, status *models.MeetingStatus, startTime, endTime *time.Time) (*models.Meeting, error)
	DeleteMeeting(userID, meetingID uint) error
}

// NoteServicer defines the contract for project notes.
type NoteServicer interface {
	CreateNote(userID, projectID uint, title, body string, pinned bool) (*models.Note, error)
	GetProjectNotes(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Note], error)
	GetNoteByID(userID, noteID uint) (*models.Note, error)
	UpdateNote(userID, noteID uint, title, body string, pinned *bool) (*models.Note, error)
	DeleteNote(userID, noteID uint) error
}

// DocumentServicer defines the contract for project document metadata.
type DocumentServicer interface {
	CreateDocument(userID, projectID uint, name, contentType string, size int64) (*models.Document, error)
	GetProjectDocuments(userID, projectID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Document], error)
	GetDocumentByID(userID, documentID uint) (*models.Document, error)
	DeleteDocument(userID, documentID uint) error
}
