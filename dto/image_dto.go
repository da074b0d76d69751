package dto

import (
	"encoding/json"
	"errors"
)

// ImageInput is the tagged union accepted by the image endpoints: either a
// bare URL string or an object {"url": ..., "isPrimary": ...}. When a payload
// is a bare list of URLs the first entry becomes the primary image.
type ImageInput struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`

	explicit bool // true when the primary flag came from the payload
}

// NewImageInput builds an explicit ImageInput, used by tests and seeds
func NewImageInput(url string, isPrimary bool) ImageInput {
	return ImageInput{URL: url, IsPrimary: isPrimary, explicit: true}
}

// UnmarshalJSON resolves the union at the boundary
func (i *ImageInput) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		i.URL = url
		i.IsPrimary = false
		i.explicit = false
		return nil
	}

	var obj struct {
		URL       string `json:"url"`
		IsPrimary bool   `json:"isPrimary"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.New("image must be a URL string or an object with url and isPrimary")
	}
	if obj.URL == "" {
		return errors.New("image url is required")
	}
	i.URL = obj.URL
	i.IsPrimary = obj.IsPrimary
	i.explicit = true
	return nil
}

// Explicit reports whether the entry carried its own primary flag
func (i ImageInput) Explicit() bool {
	return i.explicit
}

// ReplaceImagesRequest replaces a property's image set wholesale
type ReplaceImagesRequest struct {
	Images []ImageInput `json:"images"`
}

// SetMainImageRequest upserts the single primary image
type SetMainImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// ImageResponse describes one stored image row
type ImageResponse struct {
	ID        uint   `json:"id"`
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

// MainImageResponse is returned by the main-image endpoint
type MainImageResponse struct {
	ID        uint   `json:"id"`
	Image     string `json:"image"`
	IsPrimary bool   `json:"isPrimary"`
}
