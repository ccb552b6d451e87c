package requests

// CreateProperty is bound from multipart form fields; the image arrives as a
// separate file part.
type CreateProperty struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Type        string  `json:"type" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	City        string  `json:"city" validate:"required,max=100"`
	Address     string  `json:"address" validate:"required,max=255"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	AreaSqm     float64 `json:"area_sqm" validate:"gt=0"`
	Published   bool    `json:"published"`
}

type UpdateProperty struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Type        string  `json:"type" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	City        string  `json:"city" validate:"required,max=100"`
	Address     string  `json:"address" validate:"required,max=255"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	AreaSqm     float64 `json:"area_sqm" validate:"gt=0"`
	Published   bool    `json:"published"`
}
