package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alliance-immobilier/api/dto"
	"github.com/alliance-immobilier/api/services"
	"github.com/gin-gonic/gin"
)

// PropertyController handles listing-related API endpoints
type PropertyController struct {
	propertyService *services.PropertyService
}

// NewPropertyController creates a new property controller
func NewPropertyController(propertyService *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: propertyService}
}

// RegisterRoutes registers property routes
func (c *PropertyController) RegisterRoutes(router *gin.RouterGroup) {
	properties := router.Group("/properties")
	{
		properties.GET("", c.ListProperties)
		properties.POST("", c.CreateProperty)
		properties.GET("/:id", c.GetProperty)
		properties.PUT("/:id", c.UpdateProperty)
		properties.PATCH("/:id", c.UpdateProperty)
		properties.DELETE("/:id", c.DeleteProperty)
		properties.POST("/:id/favorite", c.ToggleFavorite)
		properties.GET("/:id/images", c.ListImages)
		properties.POST("/:id/images", c.ReplaceImages)
		properties.POST("/:id/main-image", c.SetMainImage)
		properties.POST("/:id/upload-image", c.UploadImage)
		properties.GET("/:id/agents", c.ListAgents)
	}
}

// ListProperties returns the list-view summaries
func (c *PropertyController) ListProperties(ctx *gin.Context) {
	summaries, err := c.propertyService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetProperty returns the detail view of one listing
func (c *PropertyController) GetProperty(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	detail, err := c.propertyService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// CreateProperty inserts a new listing
func (c *PropertyController) CreateProperty(ctx *gin.Context) {
	var req dto.PropertyCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, err := c.propertyService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// UpdateProperty applies a partial update (PUT or PATCH)
func (c *PropertyController) UpdateProperty(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	var req dto.PropertyUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, err := c.propertyService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// DeleteProperty removes a listing and its owned rows
func (c *PropertyController) DeleteProperty(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	if err := c.propertyService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ToggleFavorite flips the favorite flag
func (c *PropertyController) ToggleFavorite(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	result, err := c.propertyService.ToggleFavorite(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListImages returns a property's images, primary first
func (c *PropertyController) ListImages(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	images, err := c.propertyService.ListImages(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, images)
}

// ReplaceImages swaps a property's whole image set
func (c *PropertyController) ReplaceImages(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	var req dto.ReplaceImagesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, err := c.propertyService.ReplaceImages(id, req.Images)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// SetMainImage upserts the single primary image
func (c *PropertyController) SetMainImage(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	var req dto.SetMainImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := c.propertyService.SetPrimaryImage(id, req.ImageURL)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// UploadImage stores a multipart image upload and records its URL
func (c *PropertyController) UploadImage(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	isPrimary, _ := strconv.ParseBool(ctx.PostForm("isPrimary"))

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := c.propertyService.UploadImage(id, fileHeader.Filename, file, isPrimary)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// ListAgents returns the agents linked to a property
func (c *PropertyController) ListAgents(ctx *gin.Context) {
	id, ok := propertyID(ctx)
	if !ok {
		return
	}
	agents, err := c.propertyService.AgentsFor(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, agents)
}

// propertyID parses the :id path parameter; a non-numeric id is treated the
// same as an unknown one
func propertyID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": services.ErrPropertyNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors to HTTP statuses
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPropertyNotFound), errors.Is(err, services.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.IsConflict(err):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
