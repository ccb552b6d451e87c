package models

type Favorite struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
	TimeModel
}

func (f *Favorite) OwnerID() string {
	return f.UserID
}
