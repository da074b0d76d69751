package models

import (
	"time"
)

// PropertyType represents the kind of listing
type PropertyType string

const (
	TypeVilla     PropertyType = "Villa"
	TypeApartment PropertyType = "Apartment"
	TypeHouse     PropertyType = "House"
	TypeCondo     PropertyType = "Condo"
	TypeEstate    PropertyType = "Estate"
	TypeTerrain   PropertyType = "Terrain"
)

// IsLand reports whether the type is a land parcel rather than a built property
func (t PropertyType) IsLand() bool {
	return t == TypeTerrain
}

// Valid reports whether the type is one of the supported listing kinds
func (t PropertyType) Valid() bool {
	switch t {
	case TypeVilla, TypeApartment, TypeHouse, TypeCondo, TypeEstate, TypeTerrain:
		return true
	}
	return false
}

// Property represents a real-estate listing
type Property struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Title        string       `json:"title" gorm:"not null"`
	Slug         string       `json:"slug" gorm:"uniqueIndex;not null"`
	Price        string       `json:"price" gorm:"not null"`
	PriceValue   int          `json:"priceValue" gorm:"not null;index"`
	Location     string       `json:"location" gorm:"not null"`
	Rooms        *int         `json:"rooms" gorm:"default:null"`
	Baths        *int         `json:"baths" gorm:"default:null"`
	Surface      *float64     `json:"surface" gorm:"default:null"`
	Dimensions   *string      `json:"dimensions" gorm:"default:null"`
	PropertyType PropertyType `json:"propertyType" gorm:"type:varchar(50);not null"`
	Description  string       `json:"description" gorm:"type:text"`
	Lat          *float64     `json:"lat" gorm:"default:null"`
	Lng          *float64     `json:"lng" gorm:"default:null"`
	IsFavorite   bool         `json:"isFavorite" gorm:"not null;default:false"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	// Relations
	Features []PropertyFeature `json:"features,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Images   []PropertyImage   `json:"images,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Agents   []Agent           `json:"agents,omitempty" gorm:"many2many:property_agents"`
}

// PropertyFeature is a free-text tag owned by exactly one property
type PropertyFeature struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	PropertyID uint   `json:"propertyId" gorm:"not null;index"`
	Feature    string `json:"feature" gorm:"not null"`
}

// PropertyImage is a display image for a property. At most one image per
// property carries IsPrimary = true.
type PropertyImage struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	PropertyID uint   `json:"propertyId" gorm:"not null;index"`
	ImageURL   string `json:"imageUrl" gorm:"not null"`
	IsPrimary  bool   `json:"isPrimary" gorm:"not null;default:false"`
}
