package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/alliance-immobilier/api/dto"
	"github.com/alliance-immobilier/api/models"
	"github.com/alliance-immobilier/api/utils"
	"gorm.io/gorm"
)

// PropertyService handles business logic for listings
type PropertyService struct {
	propertyRepo PropertyStore
	agentRepo    AgentStore
	media        MediaStore
}

// NewPropertyService creates a new property service instance
func NewPropertyService(propertyRepo PropertyStore, agentRepo AgentStore, media MediaStore) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		agentRepo:    agentRepo,
		media:        media,
	}
}

// List retrieves the list-view summaries, newest first
func (s *PropertyService) List() ([]dto.PropertySummary, error) {
	properties, err := s.propertyRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.PropertySummary, 0, len(properties))
	for _, p := range properties {
		summary := dto.PropertySummary{
			ID:           p.ID,
			Title:        p.Title,
			Price:        p.Price,
			PriceValue:   p.PriceValue,
			Location:     p.Location,
			Rooms:        p.Rooms,
			Baths:        p.Baths,
			Surface:      p.Surface,
			PropertyType: p.PropertyType,
			IsFavorite:   p.IsFavorite,
		}
		// Images are preloaded primary-first; only a flagged primary counts
		if len(p.Images) > 0 && p.Images[0].IsPrimary {
			url := p.Images[0].ImageURL
			summary.Image = &url
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Get retrieves the detail view of one listing
func (s *PropertyService) Get(id uint) (dto.PropertyDetail, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PropertyDetail{}, ErrPropertyNotFound
		}
		return dto.PropertyDetail{}, err
	}
	return s.toDetail(property), nil
}

// Create validates and inserts a new listing together with its features,
// images and agent links
func (s *PropertyService) Create(req dto.PropertyCreateRequest) (dto.PropertyDetail, error) {
	propertyType := models.PropertyType(req.PropertyType)
	if !propertyType.Valid() {
		return dto.PropertyDetail{}, NewValidationError("unknown property type %q", req.PropertyType)
	}

	property := models.Property{
		Title:        req.Title,
		Price:        req.Price,
		PriceValue:   req.PriceValue,
		Location:     req.Location,
		Rooms:        req.Rooms,
		Baths:        req.Baths,
		Surface:      req.Surface,
		Dimensions:   req.Dimensions,
		PropertyType: propertyType,
		Description:  req.Description,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}
	if err := validateTypeRule(&property); err != nil {
		return dto.PropertyDetail{}, err
	}

	slug, err := s.uniqueSlug(req.Title)
	if err != nil {
		return dto.PropertyDetail{}, err
	}
	property.Slug = slug

	for _, feature := range req.Features {
		property.Features = append(property.Features, models.PropertyFeature{Feature: feature})
	}

	if len(req.Images) > 0 {
		images, err := resolveImages(req.Images)
		if err != nil {
			return dto.PropertyDetail{}, err
		}
		property.Images = images
	}

	if len(req.AgentIDs) > 0 {
		agents, err := s.agentRepo.FindByIDs(req.AgentIDs)
		if err != nil {
			return dto.PropertyDetail{}, err
		}
		if len(agents) != len(req.AgentIDs) {
			return dto.PropertyDetail{}, NewValidationError("one or more agent ids do not exist")
		}
		property.Agents = agents
	}

	created, err := s.propertyRepo.Create(property)
	if err != nil {
		return dto.PropertyDetail{}, err
	}
	return s.Get(created.ID)
}

// Update applies a partial update. The slug is never regenerated when the
// title changes; the type rule is re-checked against the merged record.
func (s *PropertyService) Update(id uint, req dto.PropertyUpdateRequest) (dto.PropertyDetail, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PropertyDetail{}, ErrPropertyNotFound
		}
		return dto.PropertyDetail{}, err
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.PriceValue != nil {
		property.PriceValue = *req.PriceValue
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Rooms != nil {
		property.Rooms = req.Rooms
	}
	if req.Baths != nil {
		property.Baths = req.Baths
	}
	if req.Surface != nil {
		property.Surface = req.Surface
	}
	if req.Dimensions != nil {
		property.Dimensions = req.Dimensions
	}
	if req.PropertyType != nil {
		propertyType := models.PropertyType(*req.PropertyType)
		if !propertyType.Valid() {
			return dto.PropertyDetail{}, NewValidationError("unknown property type %q", *req.PropertyType)
		}
		property.PropertyType = propertyType
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Lat != nil {
		property.Lat = req.Lat
	}
	if req.Lng != nil {
		property.Lng = req.Lng
	}

	if err := validateTypeRule(&property); err != nil {
		return dto.PropertyDetail{}, err
	}

	// Owned rows are managed by the image endpoints, not by Save
	property.Features = nil
	property.Images = nil
	property.Agents = nil

	if err := s.propertyRepo.Save(property); err != nil {
		return dto.PropertyDetail{}, err
	}
	return s.Get(id)
}

// Delete removes a listing and its owned rows
func (s *PropertyService) Delete(id uint) error {
	err := s.propertyRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPropertyNotFound
	}
	return err
}

// ToggleFavorite flips the favorite flag and returns the new value
func (s *PropertyService) ToggleFavorite(id uint) (dto.FavoriteResponse, error) {
	isFavorite, err := s.propertyRepo.ToggleFavorite(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FavoriteResponse{}, ErrPropertyNotFound
		}
		return dto.FavoriteResponse{}, err
	}
	return dto.FavoriteResponse{ID: id, IsFavorite: isFavorite}, nil
}

// ReplaceImages swaps a property's whole image set. An empty set is rejected
// and leaves the existing images untouched.
func (s *PropertyService) ReplaceImages(id uint, inputs []dto.ImageInput) (dto.PropertyDetail, error) {
	if len(inputs) == 0 {
		return dto.PropertyDetail{}, NewValidationError("images list cannot be empty")
	}
	if err := s.requireProperty(id); err != nil {
		return dto.PropertyDetail{}, err
	}

	images, err := resolveImages(inputs)
	if err != nil {
		return dto.PropertyDetail{}, err
	}
	if err := s.propertyRepo.ReplaceImages(id, images); err != nil {
		return dto.PropertyDetail{}, err
	}
	return s.Get(id)
}

// SetPrimaryImage upserts the single primary image for a property
func (s *PropertyService) SetPrimaryImage(id uint, imageURL string) (dto.MainImageResponse, error) {
	if imageURL == "" {
		return dto.MainImageResponse{}, NewValidationError("imageUrl is required")
	}
	if err := s.requireProperty(id); err != nil {
		return dto.MainImageResponse{}, err
	}

	image, err := s.propertyRepo.SetPrimaryImage(id, imageURL)
	if err != nil {
		return dto.MainImageResponse{}, err
	}
	return dto.MainImageResponse{ID: id, Image: image.ImageURL, IsPrimary: image.IsPrimary}, nil
}

// UploadImage stores an uploaded file in the media store and records its URL
func (s *PropertyService) UploadImage(id uint, filename string, file io.Reader, isPrimary bool) (dto.ImageResponse, error) {
	if file == nil || filename == "" {
		return dto.ImageResponse{}, NewValidationError("image file is required")
	}
	if err := s.requireProperty(id); err != nil {
		return dto.ImageResponse{}, err
	}

	url, err := s.media.Save(id, filename, file)
	if err != nil {
		return dto.ImageResponse{}, err
	}

	image, err := s.propertyRepo.AddImage(id, url, isPrimary)
	if err != nil {
		return dto.ImageResponse{}, err
	}
	return dto.ImageResponse{ID: image.ID, ImageURL: image.ImageURL, IsPrimary: image.IsPrimary}, nil
}

// ListImages retrieves a property's images, primary first
func (s *PropertyService) ListImages(id uint) ([]dto.ImageResponse, error) {
	if err := s.requireProperty(id); err != nil {
		return nil, err
	}

	images, err := s.propertyRepo.ImagesFor(id)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ImageResponse, 0, len(images))
	for _, img := range images {
		responses = append(responses, dto.ImageResponse{ID: img.ID, ImageURL: img.ImageURL, IsPrimary: img.IsPrimary})
	}
	return responses, nil
}

// AgentsFor retrieves all agents linked to a property
func (s *PropertyService) AgentsFor(id uint) ([]models.Agent, error) {
	if err := s.requireProperty(id); err != nil {
		return nil, err
	}
	return s.agentRepo.FindByPropertyID(id)
}

func (s *PropertyService) requireProperty(id uint) error {
	exists, err := s.propertyRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPropertyNotFound
	}
	return nil
}

// uniqueSlug derives a slug from the title, suffixing a counter on collision
func (s *PropertyService) uniqueSlug(title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		return "", NewValidationError("title must contain at least one letter or digit")
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := s.propertyRepo.SlugTaken(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// toDetail maps a loaded property to its detail-view shape
func (s *PropertyService) toDetail(p models.Property) dto.PropertyDetail {
	detail := dto.PropertyDetail{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Price:        p.Price,
		PriceValue:   p.PriceValue,
		Location:     p.Location,
		Rooms:        p.Rooms,
		Baths:        p.Baths,
		Surface:      p.Surface,
		Dimensions:   p.Dimensions,
		PropertyType: p.PropertyType,
		Description:  p.Description,
		Lat:          p.Lat,
		Lng:          p.Lng,
		IsFavorite:   p.IsFavorite,
		Features:     make([]string, 0, len(p.Features)),
		Images:       make([]string, 0, len(p.Images)),
	}
	for _, f := range p.Features {
		detail.Features = append(detail.Features, f.Feature)
	}
	for _, img := range p.Images {
		detail.Images = append(detail.Images, img.ImageURL)
	}
	if len(p.Agents) > 0 {
		agent := p.Agents[0]
		detail.Agent = &dto.AgentResponse{
			Name:  agent.Name,
			Phone: agent.Phone,
			Email: agent.Email,
			Image: agent.ImageURL,
		}
	}
	return detail
}

// validateTypeRule enforces the property-type field requirements: built
// properties need rooms and baths, land parcels need a surface and must not
// carry rooms or baths
func validateTypeRule(p *models.Property) error {
	if p.PropertyType.IsLand() {
		if p.Surface == nil {
			return NewValidationError("surface is required for type %s", p.PropertyType)
		}
		if p.Rooms != nil || p.Baths != nil {
			return NewValidationError("rooms and baths are not allowed for type %s", p.PropertyType)
		}
		return nil
	}
	if p.Rooms == nil || p.Baths == nil {
		return NewValidationError("rooms and baths are required for type %s", p.PropertyType)
	}
	return nil
}

// resolveImages maps the tagged-union inputs onto image rows, enforcing the
// at-most-one-primary invariant. A bare URL list promotes its first entry.
func resolveImages(inputs []dto.ImageInput) ([]models.PropertyImage, error) {
	images := make([]models.PropertyImage, 0, len(inputs))
	hasPrimary := false
	anyExplicit := false

	for _, in := range inputs {
		if in.URL == "" {
			return nil, NewValidationError("image url is required")
		}
		if in.Explicit() {
			anyExplicit = true
		}
		isPrimary := in.IsPrimary && !hasPrimary
		if isPrimary {
			hasPrimary = true
		}
		images = append(images, models.PropertyImage{ImageURL: in.URL, IsPrimary: isPrimary})
	}

	// Bare URL lists carry no flags: the first image becomes primary
	if !anyExplicit && !hasPrimary {
		images[0].IsPrimary = true
	}
	return images, nil
}
