package router

import (
	"gym_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}
}

// SetupClientRoutes sets up the client routes.
func SetupClientRoutes(authenticatedGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := authenticatedGroup.Group("/clients")
	{
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.GET("/by-phone/:phone", clientHandler.GetClientByPhoneNumber)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.PATCH("/:id/notes", clientHandler.UpdateClientNotes)
		clientRoutes.GET("/:id/memberships", clientHandler.GetClientMemberships)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupMembershipTypeRoutes sets up the membership type catalog routes.
func SetupMembershipTypeRoutes(authenticatedGroup *gin.RouterGroup, typeHandler *handlers.MembershipTypeHandler) {
	typeRoutes := authenticatedGroup.Group("/membership-types")
	{
		typeRoutes.POST("", typeHandler.CreateMembershipType)
		typeRoutes.GET("", typeHandler.GetMembershipTypes)
		typeRoutes.GET("/:id", typeHandler.GetMembershipTypeByID)
		typeRoutes.PUT("/:id", typeHandler.UpdateMembershipType)
		typeRoutes.DELETE("/:id", typeHandler.DeleteMembershipType)
	}
}

// SetupMembershipRoutes sets up the membership routes.
func SetupMembershipRoutes(authenticatedGroup *gin.RouterGroup, membershipHandler *handlers.MembershipHandler) {
	membershipRoutes := authenticatedGroup.Group("/memberships")
	{
		membershipRoutes.POST("", membershipHandler.CreateMembership)
		membershipRoutes.GET("", membershipHandler.GetMemberships)
		membershipRoutes.GET("/:id", membershipHandler.GetMembershipByID)
		membershipRoutes.GET("/:id/status", membershipHandler.GetMembershipStatus)
		membershipRoutes.POST("/:id/renew", membershipHandler.RenewMembership)
		membershipRoutes.GET("/:id/payments", membershipHandler.GetMembershipPayments)
		membershipRoutes.DELETE("/:id", membershipHandler.DeleteMembership)
	}
}

// SetupPaymentRoutes sets up the payment routes.
func SetupPaymentRoutes(authenticatedGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := authenticatedGroup.Group("/payments")
	{
		paymentRoutes.POST("", paymentHandler.CreatePayment)
		paymentRoutes.GET("", paymentHandler.GetPayments)
		paymentRoutes.GET("/:id", paymentHandler.GetPaymentByID)
		paymentRoutes.DELETE("/:id", paymentHandler.DeletePayment)
	}
}

// SetupEquipmentRoutes sets up the equipment inventory routes.
func SetupEquipmentRoutes(authenticatedGroup *gin.RouterGroup, equipmentHandler *handlers.EquipmentHandler) {
	equipmentRoutes := authenticatedGroup.Group("/equipment")
	{
		equipmentRoutes.POST("", equipmentHandler.CreateEquipment)
		equipmentRoutes.GET("", equipmentHandler.GetEquipment)
		equipmentRoutes.GET("/:id", equipmentHandler.GetEquipmentByID)
		equipmentRoutes.PATCH("/:id/status", equipmentHandler.UpdateEquipmentStatus)
		equipmentRoutes.DELETE("/:id", equipmentHandler.DeleteEquipment)
	}
}
