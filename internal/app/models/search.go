package models

// Search is a saved search: the query term plus the raw filter parameters the
// user wants replayed later.
type Search struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Query  string `json:"query"`
	Params string `json:"params"`
	TimeModel
}

func (s *Search) OwnerID() string {
	return s.UserID
}
