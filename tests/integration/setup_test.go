package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"leton/internal/handlers"
	"leton/internal/logger"
	"leton/internal/middleware"
	"leton/internal/models"
	"leton/internal/services"
	"leton/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Client{},
		&models.Contact{},
		&models.Supplier{},
		&models.Project{},
		&models.ItemLine{},
		&models.Invoice{},
		&models.Bill{},
		&models.Payment{},
		&models.Meeting{},
		&models.Note{},
		&models.Document{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	clientService := services.NewClientService(db)
	contactService := services.NewContactService(db, clientService)
	supplierService := services.NewSupplierService(db)
	projectService := services.NewProjectService(db, clientService)
	itemLineService := services.NewItemLineService(db, projectService)
	invoiceService := services.NewInvoiceService(db, projectService, itemLineService)
	billService := services.NewBillService(db, projectService, itemLineService, supplierService)
	paymentService := services.NewPaymentService(db, projectService, itemLineService)
	meetingService := services.NewMeetingService(db, projectService)
	noteService := services.NewNoteService(db, projectService)
	documentService := services.NewDocumentService(db, projectService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	contactHandler := handlers.NewContactHandler(contactService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	projectHandler := handlers.NewProjectHandler(projectService)
	itemLineHandler := handlers.NewItemLineHandler(itemLineService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	billHandler := handlers.NewBillHandler(billService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	noteHandler := handlers.NewNoteHandler(noteService)
	documentHandler := handlers.NewDocumentHandler(documentService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	clients := protected.Group("/clients")
	clients.POST("", clientHandler.CreateClient)
	clients.GET("", clientHandler.GetClients)
	clients.GET("/:id", clientHandler.GetClient)
	clients.PUT("/:id", clientHandler.UpdateClient)
	clients.DELETE("/:id", clientHandler.DeleteClient)
	clients.POST("/:id/contacts", contactHandler.CreateContact)
	clients.GET("/:id/contacts", contactHandler.GetContacts)

	contacts := protected.Group("/contacts")
	contacts.GET("/:id", contactHandler.GetContact)
	contacts.PUT("/:id", contactHandler.UpdateContact)
	contacts.DELETE("/:id", contactHandler.DeleteContact)

	suppliers := protected.Group("/suppliers")
	suppliers.POST("", supplierHandler.CreateSupplier)
	suppliers.GET("", supplierHandler.GetSuppliers)
	suppliers.GET("/:id", supplierHandler.GetSupplier)
	suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
	suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)

	projects := protected.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.GetProjects)
	projects.GET("/:id", projectHandler.GetProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	projects.POST("/:id/item-lines", itemLineHandler.CreateItemLine)
	projects.GET("/:id/item-lines", itemLineHandler.GetItemLines)
	projects.GET("/:id/table", itemLineHandler.GetTable)
	projects.GET("/:id/caps", itemLineHandler.GetCaps)

	itemLines := protected.Group("/item-lines")
	itemLines.GET("/:id", itemLineHandler.GetItemLine)
	itemLines.PUT("/:id", itemLineHandler.UpdateItemLine)
	itemLines.POST("/:id/complete", itemLineHandler.MarkCompleted)
	itemLines.DELETE("/:id", itemLineHandler.DeleteItemLine)

	projects.POST("/:id/invoices", invoiceHandler.CreateInvoice)
	projects.GET("/:id/invoices", invoiceHandler.GetInvoices)

	invoices := protected.Group("/invoices")
	invoices.GET("/:id", invoiceHandler.GetInvoice)
	invoices.PUT("/:id/status", invoiceHandler.UpdateInvoiceStatus)

	projects.POST("/:id/bills", billHandler.CreateBill)
	projects.GET("/:id/bills", billHandler.GetBills)

	bills := protected.Group("/bills")
	bills.GET("/:id", billHandler.GetBill)
	bills.PUT("/:id/status", billHandler.UpdateBillStatus)

	projects.POST("/:id/payments", paymentHandler.RecordPayment)
	projects.GET("/:id/payments", paymentHandler.GetPayments)

	payments := protected.Group("/payments")
	payments.GET("/:id", paymentHandler.GetPayment)

	projects.POST("/:id/meetings", meetingHandler.CreateMeeting)
	projects.GET("/:id/meetings", meetingHandler.GetMeetings)

	meetings := protected.Group("/meetings")
	meetings.GET("/:id", meetingHandler.GetMeeting)
	meetings.PUT("/:id", meetingHandler.UpdateMeeting)
	meetings.DELETE("/:id", meetingHandler.DeleteMeeting)

	projects.POST("/:id/notes", noteHandler.CreateNote)
	projects.GET("/:id/notes", noteHandler.GetNotes)

	notes := protected.Group("/notes")
	notes.GET("/:id", noteHandler.GetNote)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	projects.POST("/:id/documents", documentHandler.CreateDocument)
	projects.GET("/:id/documents", documentHandler.GetDocuments)

	documents := protected.Group("/documents")
	documents.GET("/:id", documentHandler.GetDocument)
	documents.DELETE("/:id", documentHandler.DeleteDocument)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// createProject creates a client and a project for it, returning the project ID.
func (app *testApp) createProject(t *testing.T, token, name string) float64 {
	t.Helper()
	rec := app.request("POST", "/api/v1/clients",
		fmt.Sprintf(`{"name":"Client for %s"}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client failed: %d %s", rec.Code, rec.Body.String())
	}
	clientID := parseJSON(t, rec)["client"].(map[string]interface{})["id"].(float64)

	rec = app.request("POST", "/api/v1/projects",
		fmt.Sprintf(`{"client_id":%.0f,"name":%q}`, clientID, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["project"].(map[string]interface{})["id"].(float64)
}
