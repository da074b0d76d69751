package repositories

import (
	"github.com/alliance-immobilier/api/models"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties and their
// owned features and images
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// imageOrder keeps the primary image first, then insertion order
const imageOrder = "is_primary DESC, id ASC"

// FindAll retrieves all properties with their images, newest first
func (r *PropertyRepository) FindAll() ([]models.Property, error) {
	var properties []models.Property
	result := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order(imageOrder)
		}).
		Order("created_at DESC, id DESC").
		Find(&properties)
	return properties, result.Error
}

// FindByID retrieves a property with its features, images and agents
func (r *PropertyRepository) FindByID(id uint) (models.Property, error) {
	var property models.Property
	result := r.db.
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order(imageOrder)
		}).
		Preload("Agents").
		First(&property, "id = ?", id)
	return property, result.Error
}

// Create inserts a new property together with its owned rows
func (r *PropertyRepository) Create(property models.Property) (models.Property, error) {
	result := r.db.Create(&property)
	return property, result.Error
}

// Save persists changes to an existing property record
func (r *PropertyRepository) Save(property models.Property) error {
	return r.db.Save(&property).Error
}

// Delete removes a property and cascades to its features and images. Join
// rows to agents are removed; the agents themselves survive.
func (r *PropertyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyFeature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Property{ID: id}).Association("Agents").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&models.Property{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a property exists
func (r *PropertyRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Property{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ToggleFavorite flips is_favorite in a single atomic update and returns the
// new value
func (r *PropertyRepository) ToggleFavorite(id uint) (bool, error) {
	result := r.db.Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("is_favorite", gorm.Expr("NOT is_favorite"))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, gorm.ErrRecordNotFound
	}

	var isFavorite bool
	err := r.db.Model(&models.Property{}).
		Select("is_favorite").
		Where("id = ?", id).
		Scan(&isFavorite).Error
	return isFavorite, err
}

// ReplaceImages deletes the property's image set and inserts the new one.
// Runs in a transaction so a failure partway leaves the old set intact.
func (r *PropertyRepository) ReplaceImages(id uint, images []models.PropertyImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ID = 0
			images[i].PropertyID = id
		}
		return tx.Create(&images).Error
	})
}

// SetPrimaryImage upserts a single primary-image row, clearing any prior
// primary inside the same transaction
func (r *PropertyRepository) SetPrimaryImage(id uint, imageURL string) (models.PropertyImage, error) {
	var image models.PropertyImage
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PropertyImage{}).
			Where("property_id = ? AND is_primary = ?", id, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}

		result := tx.Where("property_id = ? AND image_url = ?", id, imageURL).First(&image)
		switch {
		case result.Error == nil:
			image.IsPrimary = true
			return tx.Save(&image).Error
		case result.Error == gorm.ErrRecordNotFound:
			image = models.PropertyImage{PropertyID: id, ImageURL: imageURL, IsPrimary: true}
			return tx.Create(&image).Error
		default:
			return result.Error
		}
	})
	return image, err
}

// AddImage inserts one image row, demoting the current primary first when the
// new row is primary
func (r *PropertyRepository) AddImage(id uint, imageURL string, isPrimary bool) (models.PropertyImage, error) {
	image := models.PropertyImage{PropertyID: id, ImageURL: imageURL, IsPrimary: isPrimary}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if isPrimary {
			if err := tx.Model(&models.PropertyImage{}).
				Where("property_id = ? AND is_primary = ?", id, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&image).Error
	})
	return image, err
}

// ImagesFor retrieves a property's images, primary first
func (r *PropertyRepository) ImagesFor(id uint) ([]models.PropertyImage, error) {
	var images []models.PropertyImage
	result := r.db.Where("property_id = ?", id).Order(imageOrder).Find(&images)
	return images, result.Error
}

// SlugTaken checks if a slug is already in use
func (r *PropertyRepository) SlugTaken(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Property{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
