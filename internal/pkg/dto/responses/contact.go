package responses

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/constvars"
	"time"
)

type ContactResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	DesiredDate string    `json:"desiredDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewContactResponse(contact *models.Contact) ContactResponse {
	return ContactResponse{
		ID:          contact.ID,
		PropertyID:  contact.PropertyID,
		UserID:      contact.UserID,
		Name:        contact.Name,
		Email:       contact.Email,
		Phone:       contact.Phone,
		Message:     contact.Message,
		DesiredDate: contact.DesiredDate.Format(constvars.PassedContactTimeLayout),
		CreatedAt:   contact.CreatedAt,
		UpdatedAt:   contact.UpdatedAt,
	}
}

func NewContactListResponse(contacts []models.Contact) []ContactResponse {
	list := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		list = append(list, NewContactResponse(&contacts[i]))
	}
	return list
}
