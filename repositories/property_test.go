package repositories

import (
	"path/filepath"
	"testing"

	"github.com/alliance-immobilier/api/database"
	"github.com/alliance-immobilier/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")
	return db
}

func intPtr(v int) *int { return &v }

func newVilla(t *testing.T, repo *PropertyRepository, slug string) models.Property {
	t.Helper()

	property, err := repo.Create(models.Property{
		Title:        "Test Villa",
		Slug:         slug,
		Price:        "500,000 TND",
		PriceValue:   500000,
		Location:     "Carthage, Tunis",
		Rooms:        intPtr(4),
		Baths:        intPtr(2),
		PropertyType: models.TypeVilla,
	})
	require.NoError(t, err)
	return property
}

func primaryCount(t *testing.T, repo *PropertyRepository, id uint) int {
	t.Helper()

	images, err := repo.ImagesFor(id)
	require.NoError(t, err)
	count := 0
	for _, img := range images {
		if img.IsPrimary {
			count++
		}
	}
	return count
}

func TestToggleFavorite(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	property := newVilla(t, repo, "test-villa")

	on, err := repo.ToggleFavorite(property.ID)
	require.NoError(t, err)
	assert.True(t, on)

	// Double application returns to the original value
	off, err := repo.ToggleFavorite(property.ID)
	require.NoError(t, err)
	assert.False(t, off)
}

func TestToggleFavoriteUnknownID(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))

	_, err := repo.ToggleFavorite(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReplaceImages(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	property := newVilla(t, repo, "test-villa")

	_, err := repo.AddImage(property.ID, "https://img.test/old", true)
	require.NoError(t, err)

	err = repo.ReplaceImages(property.ID, []models.PropertyImage{
		{ImageURL: "https://img.test/a", IsPrimary: true},
		{ImageURL: "https://img.test/b"},
		{ImageURL: "https://img.test/c"},
	})
	require.NoError(t, err)

	images, err := repo.ImagesFor(property.ID)
	require.NoError(t, err)
	require.Len(t, images, 3)

	// Primary first, then insertion order; the old set is gone
	assert.Equal(t, "https://img.test/a", images[0].ImageURL)
	assert.True(t, images[0].IsPrimary)
	assert.Equal(t, "https://img.test/b", images[1].ImageURL)
	assert.False(t, images[1].IsPrimary)
	assert.Equal(t, "https://img.test/c", images[2].ImageURL)
	assert.False(t, images[2].IsPrimary)
	assert.Equal(t, 1, primaryCount(t, repo, property.ID))
}

func TestSetPrimaryImageClearsPrior(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	property := newVilla(t, repo, "test-villa")

	err := repo.ReplaceImages(property.ID, []models.PropertyImage{
		{ImageURL: "https://img.test/a", IsPrimary: true},
		{ImageURL: "https://img.test/b"},
	})
	require.NoError(t, err)

	// Promote an existing row
	image, err := repo.SetPrimaryImage(property.ID, "https://img.test/b")
	require.NoError(t, err)
	assert.True(t, image.IsPrimary)
	assert.Equal(t, 1, primaryCount(t, repo, property.ID))

	// Upsert a row that does not exist yet
	image, err = repo.SetPrimaryImage(property.ID, "https://img.test/new")
	require.NoError(t, err)
	assert.True(t, image.IsPrimary)
	assert.Equal(t, 1, primaryCount(t, repo, property.ID))

	images, err := repo.ImagesFor(property.ID)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "https://img.test/new", images[0].ImageURL)
}

func TestAddImagePrimaryDemotesCurrent(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	property := newVilla(t, repo, "test-villa")

	_, err := repo.AddImage(property.ID, "https://img.test/a", true)
	require.NoError(t, err)
	_, err = repo.AddImage(property.ID, "https://img.test/b", true)
	require.NoError(t, err)
	_, err = repo.AddImage(property.ID, "https://img.test/c", false)
	require.NoError(t, err)

	assert.Equal(t, 1, primaryCount(t, repo, property.ID))

	images, err := repo.ImagesFor(property.ID)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "https://img.test/b", images[0].ImageURL)
}

func TestDeleteCascadesToOwnedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	agentRepo := NewAgentRepository(db)

	agent := models.Agent{Name: "Sophia Martinez", Phone: "+216 71 123 456", Email: "sophia@allianceimmobilier.tn"}
	require.NoError(t, db.Create(&agent).Error)

	property, err := repo.Create(models.Property{
		Title:        "Doomed Villa",
		Slug:         "doomed-villa",
		Price:        "100,000 TND",
		PriceValue:   100000,
		Location:     "Tunis",
		Rooms:        intPtr(2),
		Baths:        intPtr(1),
		PropertyType: models.TypeVilla,
		Features:     []models.PropertyFeature{{Feature: "Garden"}},
		Images:       []models.PropertyImage{{ImageURL: "https://img.test/a", IsPrimary: true}},
		Agents:       []models.Agent{agent},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(property.ID))

	var features, images int64
	require.NoError(t, db.Model(&models.PropertyFeature{}).Where("property_id = ?", property.ID).Count(&features).Error)
	require.NoError(t, db.Model(&models.PropertyImage{}).Where("property_id = ?", property.ID).Count(&images).Error)
	assert.Zero(t, features)
	assert.Zero(t, images)

	// The agent is a peer, not an owned row
	var agentCount int64
	require.NoError(t, db.Model(&models.Agent{}).Count(&agentCount).Error)
	assert.EqualValues(t, 1, agentCount)

	linked, err := agentRepo.FindByPropertyID(property.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestDeleteUnknownID(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	assert.ErrorIs(t, repo.Delete(9999), gorm.ErrRecordNotFound)
}

func TestFindAllOrdersNewestFirst(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))

	first := newVilla(t, repo, "villa-one")
	// id DESC breaks the tie when both rows share a timestamp tick
	second := newVilla(t, repo, "villa-two")

	properties, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, second.ID, properties[0].ID)
	assert.Equal(t, first.ID, properties[1].ID)
}

func TestFindByIDLoadsRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)

	agent := models.Agent{Name: "Michael Chen", Phone: "+216 71 123 457", Email: "michael@allianceimmobilier.tn"}
	require.NoError(t, db.Create(&agent).Error)

	created, err := repo.Create(models.Property{
		Title:        "Detailed Villa",
		Slug:         "detailed-villa",
		Price:        "750,000 TND",
		PriceValue:   750000,
		Location:     "La Marsa, Tunis",
		Rooms:        intPtr(3),
		Baths:        intPtr(2),
		PropertyType: models.TypeVilla,
		Features: []models.PropertyFeature{
			{Feature: "Sea view"},
			{Feature: "Elevator"},
		},
		Images: []models.PropertyImage{
			{ImageURL: "https://img.test/secondary"},
			{ImageURL: "https://img.test/primary", IsPrimary: true},
		},
		Agents: []models.Agent{agent},
	})
	require.NoError(t, err)

	property, err := repo.FindByID(created.ID)
	require.NoError(t, err)

	require.Len(t, property.Features, 2)
	assert.Equal(t, "Sea view", property.Features[0].Feature)

	require.Len(t, property.Images, 2)
	assert.Equal(t, "https://img.test/primary", property.Images[0].ImageURL)

	require.Len(t, property.Agents, 1)
	assert.Equal(t, "Michael Chen", property.Agents[0].Name)
}
