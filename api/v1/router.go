package v1

import (
	"github.com/alliance-immobilier/api/middleware"
	"github.com/alliance-immobilier/api/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, propertyService *services.PropertyService, authService *services.AuthService, contactService *services.ContactService) {
	router.GET("/health", HealthCheck)

	propertyController := NewPropertyController(propertyService)
	propertyController.RegisterRoutes(router)

	authController := NewAuthController(authService)
	authController.RegisterRoutes(router)
	// The profile endpoint is the only one behind the auth middleware
	router.GET("/auth/me", middleware.AuthMiddleware(), authController.GetCurrentUser)

	contactController := NewContactController(contactService)
	contactController.RegisterRoutes(router)
}
