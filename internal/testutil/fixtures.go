package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"leton/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestClient creates a client for the given user.
func CreateTestClient(t *testing.T, db *gorm.DB, userID uint) *models.Client {
	t.Helper()

	client := &models.Client{
		UserID: userID,
		Name:   fmt.Sprintf("Test Client %d", nextID()),
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// CreateTestSupplier creates a supplier for the given user.
func CreateTestSupplier(t *testing.T, db *gorm.DB, userID uint) *models.Supplier {
	t.Helper()

	supplier := &models.Supplier{
		UserID: userID,
		Name:   fmt.Sprintf("Test Supplier %d", nextID()),
		Trade:  "concrete",
	}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("failed to create test supplier: %v", err)
	}
	return supplier
}

// CreateTestProject creates a USD project for the given user and client.
func CreateTestProject(t *testing.T, db *gorm.DB, userID, clientID uint) *models.Project {
	t.Helper()

	project := &models.Project{
		UserID:   userID,
		ClientID: clientID,
		Name:     fmt.Sprintf("Test Project %d", nextID()),
		Status:   models.ProjectStatusActive,
		Currency: "USD",
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestItemLine creates a root-level (level 1) item line with a
// contractor and the given estimated amounts.
func CreateTestItemLine(t *testing.T, db *gorm.DB, projectID uint, estCost, estRevenue float64) *models.ItemLine {
	t.Helper()

	line := &models.ItemLine{
		ProjectID:        projectID,
		Level:            1,
		Name:             fmt.Sprintf("Test Item %d", nextID()),
		Contractor:       "Test Contractor",
		EstimatedCost:    estCost,
		EstimatedRevenue: estRevenue,
		Status:           models.ItemLineStatusNotStarted,
		IsCategory:       true,
	}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("failed to create test item line: %v", err)
	}
	return line
}

// CreateTestChildItemLine creates an item line one level below the parent.
func CreateTestChildItemLine(t *testing.T, db *gorm.DB, parent *models.ItemLine, estCost, estRevenue float64) *models.ItemLine {
	t.Helper()

	line := &models.ItemLine{
		ProjectID:        parent.ProjectID,
		ParentID:         &parent.ID,
		Level:            parent.Level + 1,
		Name:             fmt.Sprintf("Test Child %d", nextID()),
		EstimatedCost:    estCost,
		EstimatedRevenue: estRevenue,
		Status:           models.ItemLineStatusNotStarted,
	}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("failed to create test child item line: %v", err)
	}
	return line
}

// CreateTestInvoice creates a sent invoice against the item line and bumps
// its invoiced counter the way the service does.
func CreateTestInvoice(t *testing.T, db *gorm.DB, projectID, itemLineID uint, amount float64) *models.Invoice {
	t.Helper()

	invoice := &models.Invoice{
		ProjectID:  projectID,
		ItemLineID: itemLineID,
		Number:     fmt.Sprintf("INV-%04d", nextID()),
		Amount:     amount,
		Status:     models.InvoiceStatusSent,
		IssueDate:  time.Now(),
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}
	if err := db.Model(&models.ItemLine{}).Where("id = ?", itemLineID).
		Update("invoiced", gorm.Expr("invoiced + ?", amount)).Error; err != nil {
		t.Fatalf("failed to bump invoiced counter: %v", err)
	}
	return invoice
}
