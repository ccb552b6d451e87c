package models

import "time"

// Contact is a viewing request left on a property. UserID is the requesting
// user; ownership for gate purposes resolves through the property's owner.
type Contact struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	DesiredDate time.Time `json:"desiredDate"`
	TimeModel
}
