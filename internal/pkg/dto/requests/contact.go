package requests

type CreateContact struct {
	PropertyID  string `json:"property_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=50"`
	Message     string `json:"message" validate:"max=2000"`
	DesiredDate string `json:"desired_date" validate:"required,datetime=2006-01-02 15:04"`
}

type UpdateContact struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=50"`
	Message     string `json:"message" validate:"max=2000"`
	DesiredDate string `json:"desired_date" validate:"required,datetime=2006-01-02 15:04"`
}
