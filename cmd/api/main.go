package main

import (
	"log"
	"os"

	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/config"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/database"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/pdfqueue"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/handler"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/routes"
	"github.com/aziyanck/ita-backoffice/pkg/email"
	"github.com/aziyanck/ita-backoffice/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the admin user
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	clientRepo := repository.NewClientRepository(db)
	dealerRepo := repository.NewDealerRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	contactRepo := repository.NewContactRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		AdminEmail:   cfg.Email.AdminEmail,
	})

	// Initialize PDF job-queue client
	pdfClient := pdfqueue.NewClient(&cfg.PDF)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, clientRepo, txManager)
	purchaseService := service.NewPurchaseService(invoiceRepo, componentRepo, dealerRepo, txManager)
	salesService := service.NewSalesService(invoiceRepo, componentRepo, txManager)
	componentService := service.NewComponentService(componentRepo, categoryRepo)
	clientService := service.NewClientService(clientRepo)
	dealerService := service.NewDealerService(dealerRepo)
	quotationService := service.NewQuotationService(quotationRepo, pdfClient)
	dashboardService := service.NewDashboardService(analyticsRepo)
	exportService := service.NewExportService(projectRepo, dashboardService)
	contactService := service.NewContactService(contactRepo, emailService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Project:   handler.NewProjectHandler(projectService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Sales:     handler.NewSalesHandler(salesService),
		Component: handler.NewComponentHandler(componentService),
		Directory: handler.NewDirectoryHandler(clientService, dealerService),
		Quotation: handler.NewQuotationHandler(quotationService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Export:    handler.NewExportHandler(exportService),
		Contact:   handler.NewContactHandler(contactService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
