package requests

type CreateSearch struct {
	Name   string `json:"name" validate:"required,max=255"`
	Query  string `json:"query" validate:"max=255"`
	Params string `json:"params" validate:"max=1000"`
}

type UpdateSearch struct {
	Name   string `json:"name" validate:"required,max=255"`
	Query  string `json:"query" validate:"max=255"`
	Params string `json:"params" validate:"max=1000"`
}
