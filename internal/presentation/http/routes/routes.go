package routes

import (
	"time"

	"github.com/aziyanck/ita-backoffice/internal/config"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/handler"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/middleware"
	"github.com/aziyanck/ita-backoffice/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Project   *handler.ProjectHandler
	Purchase  *handler.PurchaseHandler
	Sales     *handler.SalesHandler
	Component *handler.ComponentHandler
	Directory *handler.DirectoryHandler
	Quotation *handler.QuotationHandler
	Dashboard *handler.DashboardHandler
	Export    *handler.ExportHandler
	Contact   *handler.ContactHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// Website contact form
	v1.POST("/contact", h.Contact.Submit)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Projects
	registerProjectRoutes(protected, h)

	// Purchases
	registerPurchaseRoutes(protected, h)

	// Sales
	registerSalesRoutes(protected, h, deps)

	// Components and categories
	registerComponentRoutes(protected, h)

	// Clients and dealers
	registerDirectoryRoutes(protected, h)

	// Quotations
	registerQuotationRoutes(protected, h)

	// Dashboard
	registerDashboardRoutes(protected, h)

	// Exports
	registerExportRoutes(protected, h)

	// Contact submissions
	protected.GET("/contact", h.Contact.List)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerProjectRoutes(protected *gin.RouterGroup, h *Handlers) {
	projects := protected.Group("/projects")
	{
		projects.GET("", h.Project.List)
		projects.POST("", h.Project.Create)
		projects.GET("/:id", h.Project.Get)
		projects.PUT("/:id", h.Project.Update)
		projects.DELETE("/:id", h.Project.Delete)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/history", h.Purchase.History)
		purchases.GET("/:invoice_no", h.Purchase.Get)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		// Sale creation decrements stock, so duplicate submits must not
		// re-run.
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sales.Create)
		sales.GET("/latest-invoice-no", h.Sales.LatestInvoiceNo)
		sales.GET("/:invoice_no", h.Sales.Get)
	}
}

func registerComponentRoutes(protected *gin.RouterGroup, h *Handlers) {
	components := protected.Group("/components")
	{
		components.GET("", h.Component.List)
		components.GET("/:id", h.Component.Get)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Component.ListCategories)
		categories.POST("", h.Component.CreateCategory)
	}
}

func registerDirectoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/clients", h.Directory.ListClients)
	protected.GET("/dealers", h.Directory.ListDealers)
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Generate)
		quotations.GET("/terms", h.Quotation.Terms)
		quotations.GET("/:id", h.Quotation.Get)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/status-counts", h.Dashboard.StatusCounts)
		dashboard.GET("/monthly-profit", h.Dashboard.MonthlyProfit)
		dashboard.GET("/month-over-month", h.Dashboard.MonthOverMonth)
		dashboard.GET("/fy-profit", h.Dashboard.FYProfit)
		dashboard.GET("/fy-monthly", h.Dashboard.FYMonthlySeries)
	}
}

func registerExportRoutes(protected *gin.RouterGroup, h *Handlers) {
	exports := protected.Group("/exports")
	{
		exports.GET("/projects", h.Export.Projects)
		exports.GET("/fy-profit", h.Export.FYProfit)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Register)
		users.DELETE("/:id", h.User.Delete)
	}
}
