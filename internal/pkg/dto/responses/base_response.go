package responses

type DataResponse struct {
	Data interface{} `json:"data"`
}

type MessageDataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type ListResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}
