package v1

import (
	"net/http"

	"github.com/alliance-immobilier/api/dto"
	"github.com/alliance-immobilier/api/services"
	"github.com/gin-gonic/gin"
)

// ContactController handles contact-form submissions
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new contact controller
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// RegisterRoutes registers contact routes
func (c *ContactController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/contact", c.Submit)
}

// Submit validates and acknowledges a contact-form submission
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	ctx.JSON(http.StatusOK, c.contactService.Submit(req))
}
