// Package errors provides custom error types for the Leton API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Client & supplier errors.
var (
	ErrClientNotFound   = &AppError{Code: "CLIENT_NOT_FOUND", Message: "Client not found", StatusCode: http.StatusNotFound}
	ErrSupplierNotFound = &AppError{Code: "SUPPLIER_NOT_FOUND", Message: "Supplier not found", StatusCode: http.StatusNotFound}
	ErrContactNotFound  = &AppError{Code: "CONTACT_NOT_FOUND", Message: "Contact not found", StatusCode: http.StatusNotFound}
)

// Project errors.
var (
	ErrProjectNotFound = &AppError{Code: "PROJECT_NOT_FOUND", Message: "Project not found", StatusCode: http.StatusNotFound}
)

// Item-line errors.
var (
	ErrItemLineNotFound   = &AppError{Code: "ITEM_LINE_NOT_FOUND", Message: "Item line not found", StatusCode: http.StatusNotFound}
	ErrParentNotFound     = &AppError{Code: "PARENT_NOT_FOUND", Message: "Parent item line not found", StatusCode: http.StatusNotFound}
	ErrInvalidLevel       = &AppError{Code: "INVALID_LEVEL", Message: "Item line level does not match its position in the tree", StatusCode: http.StatusBadRequest}
	ErrSelfParent         = &AppError{Code: "SELF_PARENT", Message: "An item line cannot be its own parent", StatusCode: http.StatusBadRequest}
	ErrItemHasChildren    = &AppError{Code: "ITEM_HAS_CHILDREN", Message: "Item line has child item lines", StatusCode: http.StatusConflict}
	ErrCapExceeded        = &AppError{Code: "CAP_EXCEEDED", Message: "Estimated cost exceeds the parent's remaining budget", StatusCode: http.StatusBadRequest}
	ErrRevenueCapExceeded = &AppError{Code: "REVENUE_CAP_EXCEEDED", Message: "Estimated revenue exceeds the parent's remaining budget", StatusCode: http.StatusBadRequest}
	ErrContractorRequired = &AppError{Code: "CONTRACTOR_REQUIRED", Message: "A contractor is required when no parent item line carries one", StatusCode: http.StatusBadRequest}
	ErrDueBeforeStart     = &AppError{Code: "DUE_BEFORE_START", Message: "Due date cannot be before the start date", StatusCode: http.StatusBadRequest}
)

// Financial document errors.
var (
	ErrInvoiceNotFound     = &AppError{Code: "INVOICE_NOT_FOUND", Message: "Invoice not found", StatusCode: http.StatusNotFound}
	ErrBillNotFound        = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
	ErrPaymentNotFound     = &AppError{Code: "PAYMENT_NOT_FOUND", Message: "Payment not found", StatusCode: http.StatusNotFound}
	ErrInvoiceNotEditable  = &AppError{Code: "INVOICE_NOT_EDITABLE", Message: "This invoice can no longer be modified", StatusCode: http.StatusBadRequest}
	ErrBillNotEditable     = &AppError{Code: "BILL_NOT_EDITABLE", Message: "This bill can no longer be modified", StatusCode: http.StatusBadRequest}
	ErrInvalidStatusChange = &AppError{Code: "INVALID_STATUS_CHANGE", Message: "Unsupported status transition", StatusCode: http.StatusBadRequest}
)

// Collaboration errors.
var (
	ErrMeetingNotFound  = &AppError{Code: "MEETING_NOT_FOUND", Message: "Meeting not found", StatusCode: http.StatusNotFound}
	ErrNoteNotFound     = &AppError{Code: "NOTE_NOT_FOUND", Message: "Note not found", StatusCode: http.StatusNotFound}
	ErrDocumentNotFound = &AppError{Code: "DOCUMENT_NOT_FOUND", Message: "Document not found", StatusCode: http.StatusNotFound}
	ErrEndBeforeStart   = &AppError{Code: "END_BEFORE_START", Message: "End time cannot be before the start time", StatusCode: http.StatusBadRequest}
)
