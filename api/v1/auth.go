package v1

import (
	"net/http"

	"github.com/alliance-immobilier/api/dto"
	"github.com/alliance-immobilier/api/services"
	"github.com/gin-gonic/gin"
)

// AuthController handles account registration and login
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
	}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	authResponse, err := c.authService.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, authResponse)
}

// Login handles user authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	authResponse, err := c.authService.Login(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// Also set the token as an HttpOnly cookie for browser clients
	ctx.SetCookie("access_token", authResponse.Token, 86400, "/", "", false, true)
	ctx.JSON(http.StatusOK, authResponse)
}

// GetCurrentUser returns the authenticated user's profile
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	userID, exists := ctx.Get("userId")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := c.authService.GetUser(userID.(uint))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
