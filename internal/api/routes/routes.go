package routes

import (
	"fmt"
	"time"

	"collab-backend/internal/api/handlers"
	"collab-backend/internal/api/middleware"
	"collab-backend/internal/auth"
	"collab-backend/internal/config"
	"collab-backend/internal/repository"
	"collab-backend/internal/service"
	"collab-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize logo storage
	files, err := storage.New(cfg.StorageBackend, cfg.StoragePath, db)
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	// Initialize services
	owners := service.NewOwnerDirectory(companyRepo)
	logos := service.NewLogoService(files, cfg.MaxLogoWidth, cfg.MaxLogoHeight, cfg.MaxLogoPixels, cfg.MaxLogoUploadBytes)
	companyService := service.NewCompanyService(companyRepo, userRepo, projectRepo, owners, logos, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  time.Duration(cfg.JWTTTLMinutes) * time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize auth: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, files)
	companyHandler := handlers.NewCompanyHandler(companyService, cfg.MaxLogoUploadBytes)
	localeHandler := handlers.NewLocaleHandler()

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Logos are embedded by <img> tags and carry no credentials
		v1.GET("/companies/:id/logo.png", companyHandler.GetLogo)

		companies := v1.Group("/companies")
		companies.Use(authMiddleware.RequireAuth())
		{
			companies.GET("", companyHandler.ListCompanies)
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("/select-list", companyHandler.SelectList)
			companies.GET("/countries", localeHandler.Countries)
			companies.GET("/timezones", localeHandler.Timezones)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PUT("/:id", companyHandler.UpdateCompany)
			companies.DELETE("/:id", companyHandler.DeleteCompany)
			companies.PUT("/:id/hide-welcome-info", companyHandler.HideWelcomeInfo)
			companies.GET("/:id/permissions", companyHandler.GetPermissions)
			companies.PUT("/:id/permissions", companyHandler.UpdatePermissions)
			companies.PUT("/:id/logo", companyHandler.UpdateLogo)
			companies.DELETE("/:id/logo", companyHandler.DeleteLogo)
			companies.GET("/:id/projects/:project_id/users", companyHandler.GetUsersOnProject)
		}
	}

	return router, nil
}
