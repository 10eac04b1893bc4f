package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/snackreel/backend/internal/handlers"
	"github.com/snackreel/backend/internal/middleware"
	"github.com/snackreel/backend/internal/models"
	"github.com/snackreel/backend/internal/repositories"
	"github.com/snackreel/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.FoodPartner{},
		&models.Like{},
		&models.Save{},
		&models.Follow{},
		&models.Comment{},
		&models.Order{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	partnerRepo := repositories.NewPostgresFoodPartnerRepository(pgdb)
	foodRepo := repositories.NewMongoFoodRepository(mgClient.Database("snackreel"))
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	saveRepo := repositories.NewPostgresSaveRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	orderRepo := repositories.NewPostgresOrderRepository(pgdb)

	// --- Initialize Services ---
	engagementService := services.NewEngagementService(foodRepo, partnerRepo, likeRepo, saveRepo, followRepo, commentRepo)
	orderService := services.NewOrderService(orderRepo, foodRepo, userRepo, partnerRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, partnerRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Consumer routes (require user JWT) ---
	userAPI := e.Group("/api/v1")
	userAPI.Use(middleware.UserAuthMiddleware())

	foodHandler := handlers.NewFoodHandler(foodRepo, partnerRepo, likeRepo, saveRepo, followRepo, commentRepo)
	foodHandler.RegisterUserFoodRoutes(userAPI)
	log.Println("Food feed routes configured.")

	engagementHandler := handlers.NewEngagementHandler(engagementService)
	engagementHandler.RegisterEngagementRoutes(userAPI)
	log.Println("Engagement routes configured.")

	commentHandler := handlers.NewCommentHandler(engagementService)
	commentHandler.RegisterCommentRoutes(userAPI)
	log.Println("Comment routes configured.")

	partnerHandler := handlers.NewFoodPartnerHandler(partnerRepo, foodRepo, followRepo)
	partnerHandler.RegisterUserPartnerRoutes(userAPI)
	log.Println("Food partner profile routes configured.")

	orderHandler := handlers.NewOrderHandler(orderService)
	orderHandler.RegisterUserOrderRoutes(userAPI)
	log.Println("Order routes configured.")

	// --- Partner routes (require food partner JWT) ---
	partnerAPI := e.Group("/api/v1")
	partnerAPI.Use(middleware.PartnerAuthMiddleware())

	foodHandler.RegisterPartnerFoodRoutes(partnerAPI)
	partnerHandler.RegisterPartnerProfileRoutes(partnerAPI)
	orderHandler.RegisterPartnerOrderRoutes(partnerAPI)
	log.Println("Partner routes configured.")

	log.Println("All routes configured.")
}
