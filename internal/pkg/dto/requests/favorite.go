package requests

type CreateFavorite struct {
	PropertyID string `json:"property_id" validate:"required"`
}

type UpdateFavorite struct {
	PropertyID string `json:"property_id" validate:"required"`
}
