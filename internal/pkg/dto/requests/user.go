package requests

type CreateUser struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

// UpdateUser carries no role on purpose: the update endpoint never changes
// roles, whoever calls it.
type UpdateUser struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}
