package models

import "casalist-service/internal/pkg/constvars"

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
	TimeModel
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}

// OwnerID lets a user record act as its own owner for gate checks.
func (u *User) OwnerID() string {
	return u.ID
}
