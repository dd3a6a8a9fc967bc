package main

import (
	"fmt"
	"net/http"
	"os"

	"leton/internal/config"
	"leton/internal/database"
	"leton/internal/handlers"
	"leton/internal/logger"
	"leton/internal/middleware"
	"leton/internal/services"
	"leton/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "leton/internal/docs" // Import swagger docs
)

// @title           Leton API
// @version         1.0
// @description     Leton is a construction project management application that lets contractors manage clients, projects, cost and revenue breakdowns, invoices, bills and payments.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validation tags
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
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

	// Initialize handlers
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

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Client routes
	clients := protected.Group("/clients")
	clients.POST("", clientHandler.CreateClient)
	clients.GET("", clientHandler.GetClients)
	clients.GET("/:id", clientHandler.GetClient)
	clients.PUT("/:id", clientHandler.UpdateClient)
	clients.DELETE("/:id", clientHandler.DeleteClient)
	clients.POST("/:id/contacts", contactHandler.CreateContact)
	clients.GET("/:id/contacts", contactHandler.GetContacts)

	// Contact routes
	contacts := protected.Group("/contacts")
	contacts.GET("/:id", contactHandler.GetContact)
	contacts.PUT("/:id", contactHandler.UpdateContact)
	contacts.DELETE("/:id", contactHandler.DeleteContact)

	// Supplier routes
	suppliers := protected.Group("/suppliers")
	suppliers.POST("", supplierHandler.CreateSupplier)
	suppliers.GET("", supplierHandler.GetSuppliers)
	suppliers.GET("/:id", supplierHandler.GetSupplier)
	suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
	suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)

	// Project routes
	projects := protected.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.GetProjects)
	projects.GET("/:id", projectHandler.GetProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	// Item line routes (breakdown tree and table views)
	projects.POST("/:id/item-lines", itemLineHandler.CreateItemLine)
	projects.GET("/:id/item-lines", itemLineHandler.GetItemLines)
	projects.GET("/:id/table", itemLineHandler.GetTable)
	projects.GET("/:id/caps", itemLineHandler.GetCaps)

	itemLines := protected.Group("/item-lines")
	itemLines.GET("/:id", itemLineHandler.GetItemLine)
	itemLines.PUT("/:id", itemLineHandler.UpdateItemLine)
	itemLines.POST("/:id/complete", itemLineHandler.MarkCompleted)
	itemLines.DELETE("/:id", itemLineHandler.DeleteItemLine)

	// Invoice routes
	projects.POST("/:id/invoices", invoiceHandler.CreateInvoice)
	projects.GET("/:id/invoices", invoiceHandler.GetInvoices)

	invoices := protected.Group("/invoices")
	invoices.GET("/:id", invoiceHandler.GetInvoice)
	invoices.PUT("/:id/status", invoiceHandler.UpdateInvoiceStatus)

	// Bill routes
	projects.POST("/:id/bills", billHandler.CreateBill)
	projects.GET("/:id/bills", billHandler.GetBills)

	bills := protected.Group("/bills")
	bills.GET("/:id", billHandler.GetBill)
	bills.PUT("/:id/status", billHandler.UpdateBillStatus)

	// Payment routes
	projects.POST("/:id/payments", paymentHandler.RecordPayment)
	projects.GET("/:id/payments", paymentHandler.GetPayments)

	payments := protected.Group("/payments")
	payments.GET("/:id", paymentHandler.GetPayment)

	// Meeting routes
	projects.POST("/:id/meetings", meetingHandler.CreateMeeting)
	projects.GET("/:id/meetings", meetingHandler.GetMeetings)

	meetings := protected.Group("/meetings")
	meetings.GET("/:id", meetingHandler.GetMeeting)
	meetings.PUT("/:id", meetingHandler.UpdateMeeting)
	meetings.DELETE("/:id", meetingHandler.DeleteMeeting)

	// Note routes
	projects.POST("/:id/notes", noteHandler.CreateNote)
	projects.GET("/:id/notes", noteHandler.GetNotes)

	notes := protected.Group("/notes")
	notes.GET("/:id", noteHandler.GetNote)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	// Document routes
	projects.POST("/:id/documents", documentHandler.CreateDocument)
	projects.GET("/:id/documents", documentHandler.GetDocuments)

	documents := protected.Group("/documents")
	documents.GET("/:id", documentHandler.GetDocument)
	documents.DELETE("/:id", documentHandler.DeleteDocument)

	log.Infof("Starting Leton backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
