package dto

import (
	"github.com/alliance-immobilier/api/models"
)

// PropertySummary is the list-view shape of a listing
type PropertySummary struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Price        string              `json:"price"`
	PriceValue   int                 `json:"priceValue"`
	Location     string              `json:"location"`
	Rooms        *int                `json:"rooms"`
	Baths        *int                `json:"baths"`
	Surface      *float64            `json:"surface"`
	PropertyType models.PropertyType `json:"propertyType"`
	IsFavorite   bool                `json:"isFavorite"`
	Image        *string             `json:"image"`
}

// AgentResponse is the nested agent shape inside a property detail
type AgentResponse struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email string  `json:"email"`
	Image *string `json:"image"`
}

// PropertyDetail is the detail-view shape: the full record plus ordered
// features, ordered images (primary first) and the first linked agent
type PropertyDetail struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Price        string              `json:"price"`
	PriceValue   int                 `json:"priceValue"`
	Location     string              `json:"location"`
	Rooms        *int                `json:"rooms"`
	Baths        *int                `json:"baths"`
	Surface      *float64            `json:"surface"`
	Dimensions   *string             `json:"dimensions"`
	PropertyType models.PropertyType `json:"propertyType"`
	Description  string              `json:"description"`
	Lat          *float64            `json:"lat"`
	Lng          *float64            `json:"lng"`
	IsFavorite   bool                `json:"isFavorite"`
	Features     []string            `json:"features"`
	Images       []string            `json:"images"`
	Agent        *AgentResponse      `json:"agent"`
}

// PropertyCreateRequest carries the fields for a new listing
type PropertyCreateRequest struct {
	Title        string       `json:"title" binding:"required"`
	Price        string       `json:"price" binding:"required"`
	PriceValue   int          `json:"priceValue" binding:"required"`
	Location     string       `json:"location" binding:"required"`
	Rooms        *int         `json:"rooms"`
	Baths        *int         `json:"baths"`
	Surface      *float64     `json:"surface"`
	Dimensions   *string      `json:"dimensions"`
	PropertyType string       `json:"propertyType" binding:"required"`
	Description  string       `json:"description"`
	Lat          *float64     `json:"lat"`
	Lng          *float64     `json:"lng"`
	Features     []string     `json:"features"`
	Images       []ImageInput `json:"images"`
	AgentIDs     []uint       `json:"agentIds"`
}

// PropertyUpdateRequest carries a partial update; nil fields are untouched.
// The slug is never regenerated on rename.
type PropertyUpdateRequest struct {
	Title        *string      `json:"title"`
	Price        *string      `json:"price"`
	PriceValue   *int         `json:"priceValue"`
	Location     *string      `json:"location"`
	Rooms        *int         `json:"rooms"`
	Baths        *int         `json:"baths"`
	Surface      *float64     `json:"surface"`
	Dimensions   *string      `json:"dimensions"`
	PropertyType *string      `json:"propertyType"`
	Description  *string      `json:"description"`
	Lat          *float64     `json:"lat"`
	Lng          *float64     `json:"lng"`
}

// FavoriteResponse is returned by the favorite toggle
type FavoriteResponse struct {
	ID         uint `json:"id"`
	IsFavorite bool `json:"isFavorite"`
}
