package responses

import (
	"casalist-service/internal/app/models"
	"time"
)

type PropertyResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	AreaSqm     float64   `json:"areaSqm"`
	Published   bool      `json:"published"`
	ImagePath   string    `json:"imagePath"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PropertyDetailResponse is the single-property view: the stored image path
// is exchanged for a short-lived presigned URL.
type PropertyDetailResponse struct {
	PropertyResponse
	ImgURL string `json:"imgUrl"`
}

func NewPropertyResponse(property *models.Property) PropertyResponse {
	return PropertyResponse{
		ID:          property.ID,
		UserID:      property.UserID,
		Title:       property.Title,
		Description: property.Description,
		Type:        property.Type,
		Price:       property.Price,
		City:        property.City,
		Address:     property.Address,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		AreaSqm:     property.AreaSqm,
		Published:   property.Published,
		ImagePath:   property.ImagePath,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}

func NewPropertyListResponse(properties []models.Property) []PropertyResponse {
	list := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		list = append(list, NewPropertyResponse(&properties[i]))
	}
	return list
}

func NewPropertyDetailResponse(property *models.Property, imgURL string) PropertyDetailResponse {
	return PropertyDetailResponse{
		PropertyResponse: NewPropertyResponse(property),
		ImgURL:           imgURL,
	}
}
