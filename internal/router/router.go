package router

import (
	"net/http"

	"gym_backend/internal/handlers"
	"gym_backend/internal/middleware"
	"gym_backend/internal/repositories"
	"gym_backend/internal/services"
	"gym_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// NewEngine builds the gin engine with the shared middleware stack.
func NewEngine(allowedOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return engine
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sqlx.DB, tokens *utils.TokenManager) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	membershipTypeRepo := repositories.NewMembershipTypeRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	equipmentRepo := repositories.NewEquipmentRepository(db)

	// Initialize Services
	authService := services.NewAuthService(authRepo, tokens, nil)
	paymentService := services.NewPaymentService(paymentRepo, membershipRepo, nil)
	membershipService := services.NewMembershipService(membershipRepo, membershipTypeRepo, clientRepo, paymentService, db, nil)
	clientService := services.NewClientService(clientRepo, membershipService, nil)
	membershipTypeService := services.NewMembershipTypeService(membershipTypeRepo)
	equipmentService := services.NewEquipmentService(equipmentRepo, nil)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService, membershipService)
	membershipTypeHandler := handlers.NewMembershipTypeHandler(membershipTypeService)
	membershipHandler := handlers.NewMembershipHandler(membershipService, paymentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware(tokens))
	{
		SetupClientRoutes(authenticated, clientHandler)
		SetupMembershipTypeRoutes(authenticated, membershipTypeHandler)
		SetupMembershipRoutes(authenticated, membershipHandler)
		SetupPaymentRoutes(authenticated, paymentHandler)
		SetupEquipmentRoutes(authenticated, equipmentHandler)
	}
}
