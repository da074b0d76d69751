package services

import (
	"io"

	"github.com/alliance-immobilier/api/models"
)

// PropertyStore is the data-access contract the property service depends on
type PropertyStore interface {
	FindAll() ([]models.Property, error)
	FindByID(id uint) (models.Property, error)
	Create(property models.Property) (models.Property, error)
	Save(property models.Property) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	ToggleFavorite(id uint) (bool, error)
	ReplaceImages(id uint, images []models.PropertyImage) error
	SetPrimaryImage(id uint, imageURL string) (models.PropertyImage, error)
	AddImage(id uint, imageURL string, isPrimary bool) (models.PropertyImage, error)
	ImagesFor(id uint) ([]models.PropertyImage, error)
	SlugTaken(slug string) (bool, error)
}

// AgentStore is the data-access contract for agent lookups
type AgentStore interface {
	FindByPropertyID(propertyID uint) ([]models.Agent, error)
	FindByIDs(ids []uint) ([]models.Agent, error)
}

// UserStore is the data-access contract the auth service depends on
type UserStore interface {
	Create(user models.User) (models.User, error)
	FindByUsername(username string) (models.User, error)
	FindByID(id uint) (models.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
}

// MediaStore persists uploaded image files and returns a serving URL
type MediaStore interface {
	Save(propertyID uint, filename string, file io.Reader) (string, error)
}
