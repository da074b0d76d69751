package database

import (
	"log"

	"github.com/alliance-immobilier/api/models"
	"github.com/alliance-immobilier/api/utils"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

// Seed loads the agency's demo listings when the properties table is empty.
// Each seeded property gets one agent; the schema itself permits more.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	agents := []models.Agent{
		{Name: "Sophia Martinez", Phone: "+216 71 123 456", Email: "sophia@allianceimmobilier.tn",
			ImageURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=Sophia&backgroundColor=c0aede")},
		{Name: "Michael Chen", Phone: "+216 71 123 457", Email: "michael@allianceimmobilier.tn",
			ImageURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=Michael&backgroundColor=d1d4f9")},
		{Name: "Alexandra Reynolds", Phone: "+216 71 123 458", Email: "alexandra@allianceimmobilier.tn",
			ImageURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=Alexandra&backgroundColor=b6e3f4")},
	}

	properties := []models.Property{
		{
			Title:        "Luxury Villa in Sidi Bou Said",
			Price:        "1,200,000 TND",
			PriceValue:   1200000,
			Location:     "Sidi Bou Said, Tunis",
			Rooms:        intPtr(4),
			Baths:        intPtr(3),
			Surface:      floatPtr(325),
			PropertyType: models.TypeVilla,
			Description:  "Stunning luxury villa in the picturesque village of Sidi Bou Said, with spacious living areas, a gourmet kitchen and a private pool surrounded by lush gardens.",
			Lat:          floatPtr(36.8702),
			Lng:          floatPtr(10.3417),
			Features: []models.PropertyFeature{
				{Feature: "Private swimming pool"},
				{Feature: "Panoramic sea views"},
				{Feature: "Landscaped gardens"},
				{Feature: "Smart home technology"},
			},
			Images: []models.PropertyImage{
				{ImageURL: "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9", IsPrimary: true},
				{ImageURL: "https://images.unsplash.com/photo-1600210492493-0946911123ea"},
				{ImageURL: "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c"},
			},
		},
		{
			Title:        "Modern Downtown Apartment",
			Price:        "850,000 TND",
			PriceValue:   850000,
			Location:     "Les Berges du Lac, Tunis",
			Rooms:        intPtr(3),
			Baths:        intPtr(2),
			Surface:      floatPtr(260),
			PropertyType: models.TypeApartment,
			Description:  "Contemporary apartment in the prestigious Les Berges du Lac district with an open-concept living space, floor-to-ceiling windows and lake views.",
			Lat:          floatPtr(36.8324),
			Lng:          floatPtr(10.2331),
			Features: []models.PropertyFeature{
				{Feature: "Lake views"},
				{Feature: "24-hour security"},
				{Feature: "Underground parking"},
				{Feature: "Fitness center"},
			},
			Images: []models.PropertyImage{
				{ImageURL: "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c", IsPrimary: true},
				{ImageURL: "https://images.unsplash.com/photo-1600607687920-4e4a92f082f9"},
			},
		},
		{
			Title:        "Buildable Land in Hammamet",
			Price:        "450,000 TND",
			PriceValue:   450000,
			Location:     "Hammamet, Tunisia",
			Surface:      floatPtr(1200),
			Dimensions:   strPtr("40m x 30m"),
			PropertyType: models.TypeTerrain,
			Description:  "Flat buildable parcel five minutes from the beach, with road access and utilities at the boundary.",
			Lat:          floatPtr(36.4074),
			Lng:          floatPtr(10.6225),
			Features: []models.PropertyFeature{
				{Feature: "Road access"},
				{Feature: "Utilities at boundary"},
			},
			Images: []models.PropertyImage{
				{ImageURL: "https://images.unsplash.com/photo-1500382017468-9049fed747ef", IsPrimary: true},
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&agents).Error; err != nil {
			return err
		}
		for i := range properties {
			properties[i].Slug = utils.Slugify(properties[i].Title)
			properties[i].Agents = []models.Agent{agents[i%len(agents)]}
			if err := tx.Create(&properties[i]).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded %d properties and %d agents", len(properties), len(agents))
		return nil
	})
}
