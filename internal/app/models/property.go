package models

type Property struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	AreaSqm     float64 `json:"areaSqm"`
	Published   bool    `json:"published"`
	ImagePath   string  `json:"imagePath"`
	TimeModel
}

func (p *Property) OwnerID() string {
	return p.UserID
}
